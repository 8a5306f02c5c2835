package engine

import (
	"sync"

	"github.com/facilityops/setupsched/internal/pipeline"
)

// resultStore keeps the most recent processed results in memory, keyed by
// report id, so async batch submissions can be fetched later. Insertion
// order is tracked for FIFO eviction once the cap is reached.
type resultStore struct {
	mu      sync.RWMutex
	results map[string]*pipeline.Result
	order   []string
	max     int
}

func newResultStore(max int) *resultStore {
	return &resultStore{
		results: make(map[string]*pipeline.Result),
		max:     max,
	}
}

func (s *resultStore) Put(id string, res *pipeline.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[id]; !exists {
		s.order = append(s.order, id)
	}
	s.results[id] = res
	for len(s.order) > s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.results, oldest)
	}
}

func (s *resultStore) Get(id string) (*pipeline.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	return res, ok
}

func (s *resultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

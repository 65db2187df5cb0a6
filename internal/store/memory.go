package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"payrise-engine/internal/domain"
)

// Memory is a process-local store for tests and one-shot runs.
type Memory struct {
	mu sync.RWMutex
	m  map[string]domain.CompanyProfile
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]domain.CompanyProfile)}
}

func (s *Memory) GetProfile(_ context.Context, companyID string) (domain.CompanyProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[domain.NormalizeCompanyName(companyID)]
	if ok {
		p.Sources = slices.Clone(p.Sources)
	}
	return p, ok, nil
}

func (s *Memory) PutProfile(_ context.Context, p domain.CompanyProfile) error {
	id := domain.NormalizeCompanyName(p.CompanyID)
	if id == "" {
		return nil
	}
	p.CompanyID = id
	p.Sources = slices.Clone(p.Sources)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = p
	return nil
}

func (s *Memory) PruneProfiles(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, p := range s.m {
		if p.FetchedAt.Before(olderThan) {
			delete(s.m, k)
			n++
		}
	}
	return n, nil
}

func (s *Memory) Close() error { return nil }

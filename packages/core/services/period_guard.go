package services

import "sync"

// PeriodGuard keeps period-wide rewrites (recompute, archive) from
// interleaving with match application inside one process. Match creation
// holds the shared side; rewrites hold the exclusive side. Across processes
// the store's advisory lock plays the same role.
type PeriodGuard struct {
	mu sync.RWMutex
}

func NewPeriodGuard() *PeriodGuard {
	return &PeriodGuard{}
}

func (g *PeriodGuard) Shared() (release func()) {
	g.mu.RLock()
	return g.mu.RUnlock
}

func (g *PeriodGuard) Exclusive() (release func()) {
	g.mu.Lock()
	return g.mu.Unlock
}

package view

import (
	"sync"
	"time"
)

type entry struct {
	board    *Board
	lastUsed time.Time
}

// Registry выдает каждому владельцу токена собственную доску
type Registry struct {
	mu     sync.Mutex
	boards map[string]*entry
	now    func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		boards: make(map[string]*entry),
		now:    time.Now,
	}
}

// Board возвращает доску по ключу, создавая ее при первом обращении
func (r *Registry) Board(key string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.boards[key]
	if !ok {
		e = &entry{board: NewBoard()}
		r.boards[key] = e
	}
	e.lastUsed = r.now()
	return e.board
}

// Drop удаляет доску по ключу
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, key)
}

// EvictIdle удаляет доски, к которым не обращались дольше maxIdle, и возвращает их число
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	evicted := 0
	for key, e := range r.boards {
		if e.lastUsed.Before(cutoff) {
			delete(r.boards, key)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

package runtime

import (
	"sync"

	"eva-support-be/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Phases of one user→assistant exchange. The idle phase is implicit: a
// conversation with no cache entry is idle.
const (
	PhaseAwaitingReply = "awaiting_reply"
	PhaseRevealing     = "revealing"
)

// StateRepository tracks the in-flight exchange per conversation. It enforces
// the one-exchange-at-a-time rule: a conversation stays busy through the
// cosmetic reveal, not just the upstream call.
type StateRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewStateRepository() *StateRepository {
	// No expiry: a slot must only free through End, which runs on the
	// same path that settles or rolls back the exchange. An entry that
	// expired on its own would leave the optimistic user message behind
	// with no rollback.
	c := cache.New(cache.NoExpiration, 0)
	return &StateRepository{cache: c}
}

// Phase returns the current phase, or "" when the conversation is idle.
func (r *StateRepository) Phase(convId uuid.UUID) string {
	if x, found := r.cache.Get(convId.String()); found {
		return x.(string)
	}
	return ""
}

// Begin transitions idle → awaiting_reply atomically, rejecting concurrent
// submissions with ErrBusy.
func (r *StateRepository) Begin(convId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.cache.Get(convId.String()); found {
		return dto.ErrBusy
	}
	r.cache.Set(convId.String(), PhaseAwaitingReply, cache.DefaultExpiration)
	return nil
}

func (r *StateRepository) SetRevealing(convId uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Set(convId.String(), PhaseRevealing, cache.DefaultExpiration)
}

// End returns the conversation to idle.
func (r *StateRepository) End(convId uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(convId.String())
}

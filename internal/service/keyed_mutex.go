package service

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes reward operations per (user, habit) key. Streak
// advance and the totals read-modify-write are not atomic as one statement,
// so concurrent completions for the same key must not interleave.
type keyedMutex struct {
	mutexes sync.Map
}

func (km *keyedMutex) lock(userID, habitID uuid.UUID) func() {
	key := userID.String() + "|" + habitID.String()
	v, _ := km.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localEntry struct {
	token   string
	expires time.Time
}

// Local é o Locker de processo único, usado quando não há Redis configurado.
type Local struct {
	mu   sync.Mutex
	keys map[string]localEntry
}

func NewLocal() *Local {
	return &Local{keys: make(map[string]localEntry)}
}

func (l *Local) Lock(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if e, ok := l.keys[key]; ok && now.Before(e.expires) {
		return "", false, nil
	}

	token := uuid.NewString()
	l.keys[key] = localEntry{token: token, expires: now.Add(ttl)}
	return token, true, nil
}

func (l *Local) Unlock(_ context.Context, key string, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.keys[key]; ok && e.token == token {
		delete(l.keys, key)
	}
	return nil
}

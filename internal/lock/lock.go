package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("lock: not acquired")

// Locker serializa escritas na agenda de um profissional: validar e gravar
// acontecem com a chave segura, fechando a janela entre leitura e escrita.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Unlock(ctx context.Context, key string, token string) error
}

func StaffKey(staffID uuid.UUID) string {
	return "staff-schedule:" + staffID.String()
}

// Acquire tenta pegar a chave até o contexto expirar, em intervalos de retry.
func Acquire(
	ctx context.Context,
	l Locker,
	key string,
	ttl time.Duration,
	retry time.Duration,
) (release func(), err error) {

	for {
		token, ok, err := l.Lock(ctx, key, ttl)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// contexto próprio: a liberação não pode morrer junto com a request
				unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = l.Unlock(unlockCtx, key, token)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ErrNotAcquired
		case <-time.After(retry):
		}
	}
}

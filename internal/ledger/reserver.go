package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hustcer/nanoid/internal/lock"
	"github.com/hustcer/nanoid/internal/logging"
)

// ErrExhausted is returned when every attempt produced an ID that was
// already reserved.
var ErrExhausted = errors.New("every candidate id was already reserved")

// DefaultAttempts is used when Reserver.Attempts is not positive.
const DefaultAttempts = 10

// Generator produces candidate IDs.
type Generator interface {
	Generate() (string, error)
}

// Reserver issues IDs that are absent from a Store.
type Reserver struct {
	Store     *Store
	Generator Generator
	Attempts  int

	// Wait, when positive, blocks up to that long for a busy ledger instead
	// of failing straight away.
	Wait time.Duration

	// NewLock overrides how the ledger lock is created. Tests use it.
	NewLock func(path string) *lock.Lock
}

// Reserve generates candidates until one is not yet in the store, records
// it and returns it. The whole operation holds the ledger lock.
func (r *Reserver) Reserve(ctx context.Context) (id string, err error) {
	logger := logging.Ctx(ctx)

	if err := r.Store.Init(ctx); err != nil {
		return "", err
	}

	newLock := r.NewLock
	if newLock == nil {
		newLock = lock.NewFromPath
	}
	l := newLock(r.Store.LockPath())
	if err := r.acquire(ctx, l); err != nil {
		return "", err
	}
	defer func() {
		if uerr := l.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	attempts := r.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for i := range attempts {
		candidate, err := r.Generator.Generate()
		if err != nil {
			return "", err
		}
		taken, err := r.Store.Has(ctx, candidate)
		if err != nil {
			return "", err
		}
		if taken {
			logger.Debug().Int("attempt", i+1).Str("id", candidate).Msg("candidate already reserved")
			continue
		}
		if err := r.Store.Add(ctx, candidate); err != nil {
			if errors.Is(err, ErrExists) {
				logger.Debug().Int("attempt", i+1).Str("id", candidate).Msg("candidate reserved concurrently")
				continue
			}
			return "", err
		}
		logger.Debug().Str("id", candidate).Str("dir", r.Store.Dir).Msg("reserved")
		return candidate, nil
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, attempts)
}

func (r *Reserver) acquire(ctx context.Context, l *lock.Lock) error {
	if r.Wait <= 0 {
		return l.TryLock(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.Wait)
	defer cancel()
	return l.Wait(ctx, lock.DefaultRetryDelay)
}

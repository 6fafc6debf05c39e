// Package lock provides advisory file locking for commands that write to
// the reservation ledger.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrAlreadyLocked is returned when another nanoid process holds the lock.
var ErrAlreadyLocked = errors.New("another nanoid command is already using the ledger")

// DefaultRetryDelay is how often Wait polls a held lock.
const DefaultRetryDelay = 50 * time.Millisecond

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLock() (bool, error)
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// Lock wraps a Flocker.
type Lock struct {
	flocker Flocker
}

// New creates a Lock from the given Flocker.
func New(f Flocker) *Lock {
	return &Lock{flocker: f}
}

// NewFromPath creates a Lock backed by a file at the given path. The
// parent directory must exist.
func NewFromPath(path string) *Lock {
	return New(flock.New(path))
}

// TryLock attempts a non-blocking acquisition. It returns ErrAlreadyLocked
// if the lock is held elsewhere.
func (l *Lock) TryLock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := l.flocker.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	return nil
}

// Wait polls every retryDelay until the lock is acquired or ctx ends. A
// context that ends first yields an error matching both ErrAlreadyLocked
// and the context error.
func (l *Lock) Wait(ctx context.Context, retryDelay time.Duration) error {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	ok, err := l.flocker.TryLockContext(ctx, retryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrAlreadyLocked, ctxErr)
		}
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	return nil
}

// Unlock releases the advisory lock.
func (l *Lock) Unlock() error {
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}

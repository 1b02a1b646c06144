// Package store implements the record store: the sole owner of the local
// SQLite database. All mutations and reads for every record kind go through
// one store goroutine, so concurrent callers queue at the API boundary
// instead of racing on the engine handle. Each operation's body runs in a
// fresh transaction; committing publishes the changes to every later
// transaction, which is what keeps per-call isolation and a shared view
// consistent.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/evlasova/moodkeeper/internal/common"
	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/logging"
)

type task struct {
	fn func(ctx context.Context) error
	p  *promise
}

// Store serializes all access to the underlying database. No other component
// is permitted to hold the *sql.DB.
type Store struct {
	db    *sql.DB
	log   logging.Logger
	tasks chan task
	quit  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once

	// seeded guards the one-time default-answer seeding. It is only touched
	// from the store goroutine.
	seeded bool
}

func newStore(db *sql.DB, log logging.Logger) *Store {
	s := &Store{
		db:    db,
		log:   log,
		tasks: make(chan task),
		quit:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Close stops the store goroutine and closes the database. Operations issued
// after Close fail with common.ErrStoreClosed.
func (s *Store) Close() error {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
	return s.db.Close()
}

func (s *Store) run() {
	defer s.wg.Done()
	for {
		select {
		case t := <-s.tasks:
			// Detached context: once issued, a unit of work runs to
			// completion even if the caller stopped waiting.
			t.p.complete(t.fn(context.Background()))
		case <-s.quit:
			for {
				select {
				case t := <-s.tasks:
					t.p.complete(common.ErrStoreClosed)
				default:
					return
				}
			}
		}
	}
}

// do enqueues fn on the store goroutine and suspends the caller until it
// completes. The caller's ctx only bounds the wait, never the work.
func (s *Store) do(ctx context.Context, fn func(ctx context.Context) error) error {
	p := newPromise()
	select {
	case s.tasks <- task{fn: fn, p: p}:
	case <-s.quit:
		return common.ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	return p.wait(ctx)
}

// read runs fn inside a fresh transaction on the store goroutine, tagging
// failures as common.ErrUnexpected.
func (s *Store) read(ctx context.Context, op string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return s.tagged(ctx, common.ErrUnexpected, op, fn)
}

// write runs fn inside a fresh transaction on the store goroutine, tagging
// failures as common.ErrContextSave.
func (s *Store) write(ctx context.Context, op string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return s.tagged(ctx, common.ErrContextSave, op, fn)
}

func (s *Store) tagged(ctx context.Context, kind error, op string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	err := s.do(ctx, func(ctx context.Context) error {
		return dbx.WithTx(ctx, s.db, nil, fn)
	})
	return tag(err, kind, op)
}

// tag wraps a store failure with its taxonomy sentinel. Lifecycle and
// caller-cancellation errors pass through untagged.
func tag(err error, kind error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrStoreClosed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, common.ErrUnexpected) || errors.Is(err, common.ErrContextSave) {
		// already tagged (e.g. a failed seed inside an answers op)
		return err
	}
	return fmt.Errorf("%w: %s: %w", kind, op, err)
}

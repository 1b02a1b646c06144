package store

import (
	"context"

	"github.com/evlasova/moodkeeper/internal/dbx"
	"github.com/evlasova/moodkeeper/internal/models"
	"github.com/evlasova/moodkeeper/internal/repositories/journal"
)

// FetchAllJournal returns all journal records. With OrderUnspecified the
// order is implementation-chosen.
func (s *Store) FetchAllJournal(ctx context.Context, order models.SortOrder) ([]models.JournalRecord, error) {
	var recs []models.JournalRecord
	err := s.read(ctx, "fetch journal records", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		recs, err = journal.NewSQLiteRepository(tx).GetAll(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// FetchJournal returns one journal record, or nil if the id is absent —
// "not found" is not an error at the store boundary.
func (s *Store) FetchJournal(ctx context.Context, id string) (*models.JournalRecord, error) {
	var rec *models.JournalRecord
	err := s.read(ctx, "fetch journal record", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rec, err = journal.NewSQLiteRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SaveJournal upserts a record by id: a second save of the same id replaces
// the stored record wholesale.
func (s *Store) SaveJournal(ctx context.Context, rec models.JournalRecord) error {
	return s.write(ctx, "save journal record", func(ctx context.Context, tx dbx.DBTX) error {
		return journal.NewSQLiteRepository(tx).CreateOrUpdate(ctx, &rec)
	})
}

// DeleteJournal removes a record; absent ids are a no-op.
func (s *Store) DeleteJournal(ctx context.Context, id string) error {
	return s.write(ctx, "delete journal record", func(ctx context.Context, tx dbx.DBTX) error {
		return journal.NewSQLiteRepository(tx).DeleteByID(ctx, id)
	})
}

// DeleteAllJournal removes every journal record.
func (s *Store) DeleteAllJournal(ctx context.Context) error {
	return s.write(ctx, "delete all journal records", func(ctx context.Context, tx dbx.DBTX) error {
		return journal.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
}

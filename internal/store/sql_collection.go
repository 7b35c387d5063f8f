package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/models"
)

// sqlCollectionStore keeps one collection in the shared collection_records
// table, one row per record with its JSON body and position.
type sqlCollectionStore[T models.Record] struct {
	*DB
	collection string
	logger     *logger.Logger
}

func NewSQLCollectionStore[T models.Record](db *DB, collection string, logger *logger.Logger) CollectionStore[T] {
	return &sqlCollectionStore[T]{
		DB:         db,
		collection: collection,
		logger:     logger,
	}
}

func (s *sqlCollectionStore[T]) Load(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionQuery(s.builder(), s.collection)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Load").
			Str("collection", s.collection).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Load").
			Str("collection", s.collection).
			Msg("failed to execute query for loading collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0, 50)

	for rows.Next() {
		var row storedRow
		if scanErr := rows.Scan(&row.recordID, &row.body); scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqlCollectionStore.Load").
				Str("collection", s.collection).
				Msg("failed to scan collection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		var record T
		if decodeErr := json.Unmarshal([]byte(row.body), &record); decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "sqlCollectionStore.Load").
				Str("collection", s.collection).
				Str("record_id", row.recordID).
				Msg("failed to decode record body")
			return nil, fmt.Errorf("%w (id=%s): %w", ErrDecodingRecord, row.recordID, decodeErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqlCollectionStore.Load").
			Str("collection", s.collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Save replaces the stored collection inside one transaction.
func (s *sqlCollectionStore[T]) Save(ctx context.Context, records []T) (err error) {
	log := logger.FromContext(ctx)

	rows, err := encodeRows(records)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Save").
			Str("collection", s.collection).
			Msg("failed to encode records")
		return err
	}

	deleteQuery, deleteArgs, err := buildDeleteCollectionQuery(s.builder(), s.collection)
	if err != nil {
		return err
	}

	var insertQuery string
	var insertArgs []any
	if len(rows) > 0 {
		insertQuery, insertArgs, err = buildInsertCollectionQuery(s.builder(), s.collection, rows)
		if err != nil {
			return err
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Save").
			Str("collection", s.collection).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Save").
			Str("collection", s.collection).
			Msg("failed to clear collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if insertQuery != "" {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "sqlCollectionStore.Save").
				Str("collection", s.collection).
				Int("records", len(rows)).
				Msg("failed to insert collection")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Save").
			Str("collection", s.collection).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlCollectionStore[T]) Drop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCollectionQuery(s.builder(), s.collection)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStore.Drop").
			Str("collection", s.collection).
			Msg("failed to drop collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func encodeRows[T models.Record](records []T) ([]storedRow, error) {
	rows := make([]storedRow, 0, len(records))
	for _, record := range records {
		body, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("%w (id=%s): %w", ErrEncodingRecord, record.RecordID(), err)
		}
		rows = append(rows, storedRow{recordID: record.RecordID().String(), body: string(body)})
	}

	return rows, nil
}

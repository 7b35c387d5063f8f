package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const collectionRecordsTable = "collection_records"

// storedRow is a single encoded member of a collection.
type storedRow struct {
	recordID string
	body     string
}

func buildSelectCollectionQuery(b sq.StatementBuilderType, collection string) (string, []any, error) {
	query, args, err := b.
		Select("record_id", "body").
		From(collectionRecordsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCollectionQuery(b sq.StatementBuilderType, collection string) (string, []any, error) {
	query, args, err := b.
		Delete(collectionRecordsTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertCollectionQuery inserts rows with their slice index as position.
func buildInsertCollectionQuery(b sq.StatementBuilderType, collection string, rows []storedRow) (string, []any, error) {
	insert := b.
		Insert(collectionRecordsTable).
		Columns("collection", "position", "record_id", "body")

	for i, row := range rows {
		insert = insert.Values(collection, i, row.recordID, row.body)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

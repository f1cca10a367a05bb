// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// builder is the shared statement builder for the local SQLite database.
// SQLite uses ? placeholders, hence the Question format.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectRecordQuery builds the lookup for a single record by key.
func buildSelectRecordQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From("records").
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertRecordQuery builds the insert-or-replace for a record. An
// existing key gets its value overwritten and updated_at bumped.
func buildUpsertRecordQuery(key, value string) (string, []any, error) {
	return builder.
		Insert("records").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

// buildDeleteRecordQuery builds the deletion of a single record by key.
func buildDeleteRecordQuery(key string) (string, []any, error) {
	return builder.
		Delete("records").
		Where(sq.Eq{"key": key}).
		ToSql()
}

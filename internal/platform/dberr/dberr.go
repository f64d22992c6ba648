// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates low-level PostgreSQL errors into [apperr.AppError] values.
//
// Uniqueness and referential integrity are enforced by the database, so the
// SQLSTATE of a failed statement is the authoritative signal for a conflict or a
// missing parent row. Callers describe what each class of failure means for
// their resource through [Mapping].
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
)

// Mapping describes how constraint failures map onto client-facing errors for
// one statement.
type Mapping struct {
	// NotFound is returned for missing rows, malformed identifiers and foreign key violations.
	NotFound *apperr.AppError

	// Conflicts maps a unique constraint name to its conflict error.
	// The empty key is used for any unique violation without a specific entry.
	Conflicts map[string]*apperr.AppError
}

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// Unclassified errors become Internal errors carrying the original cause, so
// the query text and driver message are logged but never sent to the client.
func Wrap(err error, action string, mapping Mapping) error {
	if err == nil {
		return nil
	}

	// Already classified further down the call chain
	if apperr.As(err) != nil {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) && mapping.NotFound != nil {
		return mapping.NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if conflict, ok := mapping.Conflicts[pgErr.ConstraintName]; ok {
				return conflict
			}
			if conflict, ok := mapping.Conflicts[""]; ok {
				return conflict
			}
		case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
			if mapping.NotFound != nil {
				return mapping.NotFound
			}
		}
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}

// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// Absence and constraint violations are returned as sentinels the services
// can translate into entity-specific messages. Anything else is an internal
// failure and is wrapped as [apperr.Internal] so it renders as a 500.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = errors.New("dberr: row not found")

	// ErrUniqueViolation is returned when an insert collides with a unique constraint.
	ErrUniqueViolation = errors.New("dberr: unique violation")

	// ErrForeignKeyViolation is returned when a referenced row is missing.
	ErrForeignKeyViolation = errors.New("dberr: foreign key violation")

	// ErrOutOfRange is returned when a computed value overflows its column type.
	ErrOutOfRange = errors.New("dberr: numeric value out of range")
)

// ConstraintError carries the name of the violated constraint so callers can
// tell which column collided.
type ConstraintError struct {
	Kind       error
	Constraint string
	Action     string
	Cause      error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %v (%s)", e.Action, e.Kind, e.Constraint)
}

// Unwrap exposes both the sentinel kind and the driver error.
func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// Wrap inspects a database error and classifies it.
// It hides internal database details from the client while keeping them as the cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations keep the constraint name
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pgError.ConstraintName, Action: action, Cause: err}
		case pgerrcode.ForeignKeyViolation:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pgError.ConstraintName, Action: action, Cause: err}
		case pgerrcode.NumericValueOutOfRange:
			return fmt.Errorf("%s: %w", action, errors.Join(ErrOutOfRange, err))
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// Constraint returns the violated constraint name carried by err, or "".
func Constraint(err error) string {
	var constraintError *ConstraintError
	if errors.As(err, &constraintError) {
		return constraintError.Constraint
	}
	return ""
}

// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate holds the pure validation rules shared by every domain:
// identifier syntax, blank-field detection and a chainable [Validator] that
// collects field-level failures.
//
// # Architecture
//
// Rules here never touch the store. Services run them first so that
// malformed input is rejected before any existence check is attempted.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
)

var (
	// integerRegex matches a base-10 integer with an optional leading minus.
	integerRegex = regexp.MustCompile(`^-?[0-9]+$`)

	// ErrInvalidSyntax is returned by [ParseID] for anything that is not an integer.
	ErrInvalidSyntax = errors.New("validate: invalid input syntax")
)

// # Identifier Rules

// ParseID converts a raw path segment into a numeric identifier.
//
// Only plain base-10 integers that fit in an int64 are accepted; decimals,
// exponents, whitespace and words all fail with [ErrInvalidSyntax].
func ParseID(raw string) (int64, error) {
	if !integerRegex.MatchString(raw) {
		return 0, ErrInvalidSyntax
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidSyntax
	}

	return id, nil
}

// # Emptiness Rules

// IsBlank reports whether value is empty after trimming surrounding whitespace.
// Absent and null JSON fields decode to "" and are therefore blank too.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// # Validator

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if IsBlank(value) {
		v.add(field, "This field is required")
	}
	return v
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Fields returns the names of the fields that failed, in the order they were checked.
func (v *Validator) Fields() []string {
	fields := make([]string, 0, len(v.errs))
	for _, fe := range v.errs {
		fields = append(fields, fe.Field)
	}
	return fields
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package timestamp provides the instant type exposed in API payloads.
//
// # Wire format
//
// Values are always rendered in UTC with exactly three fractional digits
// ("2020-07-09T20:11:00.000Z"), whatever precision the database returns.
// Decoding accepts any RFC 3339 string.
package timestamp

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Layout is the JSON rendering of a [Time].
const Layout = "2006-01-02T15:04:05.000Z07:00"

// Time wraps [time.Time] with a fixed millisecond JSON layout. It scans from
// and encodes to PostgreSQL TIMESTAMPTZ through pgx.
type Time struct {
	time.Time
}

// New wraps t.
func New(t time.Time) Time {
	return Time{Time: t}
}

// MarshalJSON renders the instant with [Layout] in UTC.
func (t Time) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(Layout)+2)
	buf = append(buf, '"')
	buf = t.UTC().AppendFormat(buf, Layout)
	return append(buf, '"'), nil
}

func (t *Time) ScanTimestamptz(v pgtype.Timestamptz) error {
	if !v.Valid {
		t.Time = time.Time{}
		return nil
	}
	t.Time = v.Time
	return nil
}

func (t Time) TimestamptzValue() (pgtype.Timestamptz, error) {
	return pgtype.Timestamptz{Time: t.Time, Valid: !t.IsZero()}, nil
}

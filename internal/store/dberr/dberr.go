// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dberr classifies errors returned by the settings database drivers.
// It is shared by the store, which retries transient failures, and by the
// settings source, which treats a missing table as an empty layer.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classification is the result of [Classify].
type Classification int

const (
	// NonRetryable is the classification of every error not listed below.
	NonRetryable Classification = iota

	// Retryable marks failures that may go away on their own, such as a
	// lost connection or a server that is still starting.
	Retryable

	// MissingTable marks queries against a table that does not exist yet.
	MissingTable
)

// sqliteNoSuchTable is the message prefix go-sqlite3 reports for a missing
// table. The driver has no dedicated error code for it.
const sqliteNoSuchTable = "no such table"

// Classifier implements the store's error classificator on top of [Classify].
type Classifier struct{}

func (Classifier) Classify(err error) Classification {
	return Classify(err)
}

// Classify maps err to a [Classification]. PostgreSQL errors are matched by
// SQLSTATE code:
//   - 08000, 08003, 08006 and 57P03 are [Retryable]
//   - 42P01 is [MissingTable]
//
// SQLite errors are matched by message.
func Classify(err error) Classification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow:
			return Retryable
		case pgerrcode.UndefinedTable:
			return MissingTable
		}
		return NonRetryable
	}

	if strings.Contains(err.Error(), sqliteNoSuchTable) {
		return MissingTable
	}

	return NonRetryable
}

// IsMissingTable reports whether err was caused by querying a table that
// does not exist.
func IsMissingTable(err error) bool {
	return Classify(err) == MissingTable
}

// Code returns the PostgreSQL SQLSTATE code carried by err, or "" when err
// did not come from the server.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Classification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "wrapped connection exception", err: fmt.Errorf("ping: %w", pgError(pgerrcode.ConnectionException)), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "postgres undefined table", err: pgError(pgerrcode.UndefinedTable), want: MissingTable},
		{name: "wrapped postgres undefined table", err: fmt.Errorf("query: %w", pgError(pgerrcode.UndefinedTable)), want: MissingTable},
		{name: "sqlite missing table", err: errors.New("no such table: settings"), want: MissingTable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "postgres message mentioning a table is not sqlite", err: &pgconn.PgError{Code: pgerrcode.SyntaxError, Message: "no such table"}, want: NonRetryable},
		{name: "unknown code", err: pgError("XX999"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
			assert.Equal(t, tt.want, Classifier{}.Classify(tt.err))
			assert.Equal(t, tt.want == MissingTable, IsMissingTable(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, Code(fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, Code(errors.New("boom")))
	assert.Empty(t, Code(nil))
}

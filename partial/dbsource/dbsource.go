// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dbsource provides a configuration layer read from a settings
// table holding one (scope, name, value) row per setting.
//
// Fields opt in with a `setting` tag naming their row:
//
//	Timeout partial.Optional[time.Duration] `setting:"request_timeout"`
package dbsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/appetrosyan/partial-config/internal/convert"
	"github.com/appetrosyan/partial-config/internal/store/dberr"
	"github.com/appetrosyan/partial-config/partial"
)

const (
	DefaultTable = "settings"
	DefaultScope = "default"
)

// ErrNoSettingsTable is returned when the settings table does not exist.
var ErrNoSettingsTable = errors.New("settings table does not exist")

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Option configures a settings source.
type Option func(*options)

type options struct {
	ctx               context.Context
	table             string
	scope             string
	placeholder       sq.PlaceholderFormat
	allowMissingTable bool
	log               zerolog.Logger
}

// WithContext bounds the query with ctx.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithTable reads from table instead of "settings".
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithScope selects the rows of scope instead of "default".
func WithScope(scope string) Option {
	return func(o *options) {
		o.scope = scope
	}
}

// WithPlaceholder sets the bind parameter style; use sq.Dollar for
// PostgreSQL. The default is sq.Question.
func WithPlaceholder(p sq.PlaceholderFormat) Option {
	return func(o *options) {
		o.placeholder = p
	}
}

// AllowMissingTable makes a missing settings table an empty layer.
func AllowMissingTable() Option {
	return func(o *options) {
		o.allowMissingTable = true
	}
}

// WithLogger sets the logger receiving notes about unused rows.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

type source[P any] struct {
	db   Querier
	opts options
}

// New returns a source reading the settings of one scope from db.
func New[P any](db Querier, opts ...Option) partial.Source[P] {
	o := options{
		ctx:         context.Background(),
		table:       DefaultTable,
		scope:       DefaultScope,
		placeholder: sq.Question,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return source[P]{db: db, opts: o}
}

func (s source[P]) Name() string {
	return fmt.Sprintf("Database settings (table %q, scope %q)", s.opts.table, s.opts.scope)
}

type setting struct {
	row   int
	value string
}

func (s source[P]) ToPartial() (P, error) {
	var (
		p    P
		zero P
	)

	refs, err := partial.Fields(&p)
	if err != nil {
		return zero, err
	}

	settings, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNoSettingsTable) && s.opts.allowMissingTable {
			s.opts.log.Warn().Str("table", s.opts.table).Msg("settings table is missing, skipping")
			return zero, nil
		}
		return zero, err
	}

	used := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		name, ok := ref.Tag.Lookup("setting")
		if !ok || name == "" || name == "-" {
			continue
		}
		used[name] = struct{}{}

		st, ok := settings[name]
		if !ok {
			continue
		}

		typ := ref.Slot.ElemType()
		value, err := convert.Parse(typ, st.value)
		if err != nil {
			return zero, &partial.ParseFieldError{Field: ref.Name, Type: typ.String(), Err: err}
		}
		if err := ref.Slot.SetReflect(value); err != nil {
			return zero, err
		}
	}

	for name := range settings {
		if _, ok := used[name]; !ok {
			s.opts.log.Debug().Str("setting", name).Msg("setting matches no configuration field")
		}
	}

	return p, nil
}

func (s source[P]) load() (map[string]setting, error) {
	query, args, err := sq.Select("name", "value").
		From(s.opts.table).
		Where(sq.Eq{"scope": s.opts.scope}).
		PlaceholderFormat(s.opts.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	rows, err := s.db.QueryContext(s.opts.ctx, query, args...)
	if err != nil {
		if dberr.IsMissingTable(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoSettingsTable, s.opts.table, err)
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]setting)
	for row := 1; rows.Next(); row++ {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}

		prev, seen := settings[name]
		switch {
		case !seen:
			settings[name] = setting{row: row, value: value}
		case prev.value != value:
			return nil, &partial.InconsistentSettingError{
				FirstSource:   fmt.Sprintf("Database setting %s (row %d)", name, prev.row),
				FirstSetting:  prev.value,
				SecondSource:  fmt.Sprintf("Database setting %s (row %d)", name, row),
				SecondSetting: value,
			}
		default:
			s.opts.log.Warn().Str("setting", name).Int("row", row).Msg("redundant specification of setting")
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return settings, nil
}

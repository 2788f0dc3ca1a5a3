package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/appetrosyan/partial-config/internal/store/dberr"
)

const settingsTable = "settings"

// Setting is one row of the settings table.
type Setting struct {
	Scope     string
	Name      string
	Value     string
	UpdatedAt time.Time
}

// PutSetting inserts the setting or replaces the value of an existing one.
func (db *DB) PutSetting(ctx context.Context, setting Setting) error {
	query, args, err := sq.Insert(settingsTable).
		Columns("scope", "name", "value", "updated_at").
		Values(setting.Scope, setting.Name, setting.Value, time.Now().UTC()).
		Suffix("ON CONFLICT (scope, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(db.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		db.logger.Err(err).Str("func", "PutSetting").Str("code", dberr.Code(err)).Msg("error saving setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	db.logger.Debug().Str("scope", setting.Scope).Str("setting", setting.Name).Msg("setting saved")
	return nil
}

// DeleteSetting removes one setting.
func (db *DB) DeleteSetting(ctx context.Context, scope, name string) error {
	query, args, err := sq.Delete(settingsTable).
		Where(sq.Eq{"scope": scope, "name": name}).
		PlaceholderFormat(db.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrSettingNotFound, scope, name)
	}

	return nil
}

// ListSettings returns the settings of scope ordered by name.
func (db *DB) ListSettings(ctx context.Context, scope string) ([]Setting, error) {
	query, args, err := sq.Select("scope", "name", "value", "updated_at").
		From(settingsTable).
		Where(sq.Eq{"scope": scope}).
		OrderBy("name").
		PlaceholderFormat(db.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]Setting, 0)
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Scope, &s.Name, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return settings, nil
}

package store

import (
	"context"

	"github.com/appetrosyan/partial-config/internal/store/dberr"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) dberr.Classification
}

// SettingsRepository is the persistence behind the settings layer.
type SettingsRepository interface {
	PutSetting(ctx context.Context, setting Setting) error
	DeleteSetting(ctx context.Context, scope, name string) error
	ListSettings(ctx context.Context, scope string) ([]Setting, error)
}

var _ SettingsRepository = (*DB)(nil)

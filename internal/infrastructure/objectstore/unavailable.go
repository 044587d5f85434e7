package objectstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	"github.com/kwucouncil/council-api/internal/usecase"
)

var ErrNotConfigured = crerr.New("object storage is not configured")

// Unavailable stands in for the uploader when no bucket credentials are set,
// so uploads answer 503 instead of the process refusing to start.
type Unavailable struct{}

var _ storage.Uploader = Unavailable{}

func (Unavailable) Upload(context.Context, storage.Object) (string, error) {
	return "", crerr.Mark(ErrNotConfigured, usecase.ErrDependencyUnavailable)
}

package ports

import (
	"context"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

//go:generate mockgen -source=data_source.go -destination=mocks/mock_data_source.go -package=mocks

// BuildDataSource supplies the per-run classification inputs from the static
// data export.
type BuildDataSource interface {
	Load(ctx context.Context) (*domain.IconBuildData, error)
}

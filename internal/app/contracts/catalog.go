package contracts

import (
	"context"
	"labtrack-service/internal/app/models"
)

type CatalogService interface {
	FindAll(ctx context.Context, category, search string) ([]models.TestPackage, error)
	FindByName(ctx context.Context, name string) (*models.TestPackage, error)
	Categories(ctx context.Context) ([]string, error)
	ReferenceRangeFor(parameter string) models.ReferenceRange
}

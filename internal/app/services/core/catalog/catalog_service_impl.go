package catalog

import (
	"context"
	"strings"
	"sync"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var (
	catalogServiceInstance contracts.CatalogService
	onceCatalogService     sync.Once
)

type catalogService struct {
	Packages []models.TestPackage
	Ranges   map[string]models.ReferenceRange
	Log      *zap.Logger
}

func NewCatalogService(logger *zap.Logger) contracts.CatalogService {
	onceCatalogService.Do(func() {
		catalogServiceInstance = &catalogService{
			Packages: testPackages,
			Ranges:   normalRanges,
			Log:      logger,
		}
	})
	return catalogServiceInstance
}

func (s *catalogService) FindAll(ctx context.Context, category, search string) ([]models.TestPackage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("catalogService.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
		zap.String(constvars.LoggingSearchKey, search),
	)

	search = strings.ToLower(strings.TrimSpace(search))
	result := make([]models.TestPackage, 0, len(s.Packages))
	for _, pkg := range s.Packages {
		if category != "" && pkg.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(pkg.Name), search) {
			continue
		}
		result = append(result, pkg)
	}
	return result, nil
}

func (s *catalogService) FindByName(ctx context.Context, name string) (*models.TestPackage, error) {
	for _, pkg := range s.Packages {
		if pkg.Name == name {
			found := pkg
			return &found, nil
		}
	}
	return nil, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, pkg := range s.Packages {
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			categories = append(categories, pkg.Category)
		}
	}
	return categories, nil
}

func (s *catalogService) ReferenceRangeFor(parameter string) models.ReferenceRange {
	if rng, ok := s.Ranges[parameter]; ok {
		return rng
	}
	return models.DefaultReferenceRange
}

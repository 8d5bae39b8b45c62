package controllers

import (
	"net/http"
	"sync"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/exceptions"
	"labtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogService contracts.CatalogService
}

var (
	catalogControllerInstance *CatalogController
	onceCatalogController     sync.Once
)

func NewCatalogController(logger *zap.Logger, catalogService contracts.CatalogService) *CatalogController {
	onceCatalogController.Do(func() {
		catalogControllerInstance = &CatalogController{
			Log:            logger,
			CatalogService: catalogService,
		}
	})
	return catalogControllerInstance
}

func (ctrl *CatalogController) GetTestPackages(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")
	ctrl.Log.Info("CatalogController.GetTestPackages called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
		zap.String(constvars.LoggingSearchKey, search),
	)

	packages, err := ctrl.CatalogService.FindAll(r.Context(), category, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestPackagesSuccessMessage, packages)
}

func (ctrl *CatalogController) GetTestCategories(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CatalogController.GetTestCategories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	categories, err := ctrl.CatalogService.Categories(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestCategoriesSuccessMessage, categories)
}

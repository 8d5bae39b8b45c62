package results

import (
	"sync"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
)

var (
	resultEvaluatorInstance contracts.ResultEvaluator
	onceResultEvaluator     sync.Once
)

type resultEvaluator struct {
	catalog contracts.CatalogService

	mu    sync.RWMutex
	rules map[string]contracts.AbnormalRule
}

// defaultAbnormalRule flags values outside the broad screening band. Parameters
// with tighter clinical bands get a dedicated rule via RegisterRule.
func defaultAbnormalRule(value float64) bool {
	return value > 200 || (value > 0 && value < 60)
}

func NewResultEvaluator(catalogService contracts.CatalogService) contracts.ResultEvaluator {
	onceResultEvaluator.Do(func() {
		resultEvaluatorInstance = &resultEvaluator{
			catalog: catalogService,
			rules:   make(map[string]contracts.AbnormalRule),
		}
	})
	return resultEvaluatorInstance
}

func (e *resultEvaluator) RegisterRule(parameter string, rule contracts.AbnormalRule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules[parameter] = rule
}

func (e *resultEvaluator) Evaluate(parameter string, value float64) models.LabResult {
	e.mu.RLock()
	rule, ok := e.rules[parameter]
	e.mu.RUnlock()
	if !ok {
		rule = defaultAbnormalRule
	}

	reference := e.catalog.ReferenceRangeFor(parameter)
	return models.LabResult{
		Parameter:  parameter,
		Value:      value,
		Unit:       reference.Unit,
		Range:      reference.Range,
		IsAbnormal: rule(value),
	}
}

package contracts

import "labtrack-service/internal/app/models"

// AbnormalRule classifies a raw value for one parameter.
type AbnormalRule func(value float64) bool

// ResultEvaluator classifies raw parameter values against the catalog's
// reference data. Evaluation always produces a value and has no side effects.
type ResultEvaluator interface {
	Evaluate(parameter string, value float64) models.LabResult
	RegisterRule(parameter string, rule AbnormalRule)
}

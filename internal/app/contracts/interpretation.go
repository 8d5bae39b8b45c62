package contracts

import (
	"context"
	"labtrack-service/internal/app/models"
)

// InterpretationService produces a free-text clinical summary for a set of
// evaluated results. The returned string is opaque display text. Callers must
// treat any error as recoverable and substitute the fixed fallback sentence;
// report delivery is never blocked by an unavailable provider.
type InterpretationService interface {
	Interpret(ctx context.Context, results []models.LabResult, testName string) (string, error)
}

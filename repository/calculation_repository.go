package repository

import (
	"context"

	"calc-suite/domain"
)

// CalculationRepository records calculations for the history endpoint.
type CalculationRepository interface {
	Save(ctx context.Context, calc domain.Calculation) error
	// Recent returns up to limit calculations for a tool, newest first.
	Recent(ctx context.Context, tool domain.Tool, limit int) ([]domain.Calculation, error)
}

const DefaultHistoryLimit = 20

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return DefaultHistoryLimit
	}
	return limit
}

package service

import (
	"log/slog"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
)

// PlanService exposes the reading plan catalog.
type PlanService struct {
	logger *slog.Logger
}

// NewPlanService creates a new plan service.
func NewPlanService(logger *slog.Logger) *PlanService {
	return &PlanService{logger: logger}
}

// Lists returns the full catalog in display order.
func (s *PlanService) Lists() []domain.ReadingList {
	return domain.ReadingLists
}

// GetList returns a single list by id.
func (s *PlanService) GetList(listID int) (domain.ReadingList, error) {
	list, ok := domain.ListByID(listID)
	if !ok {
		return domain.ReadingList{}, apperrors.NotFoundf("reading list %d not found", listID)
	}
	return list, nil
}

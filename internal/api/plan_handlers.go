package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hornerapp/horner-server/internal/domain"
)

func (s *Server) registerPlanRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listReadingLists",
		Method:      http.MethodGet,
		Path:        "/api/v1/plan/lists",
		Summary:     "List reading lists",
		Description: "Returns the ten reading lists of the plan in display order",
		Tags:        []string{"Plan"},
	}, s.handleListReadingLists)

	huma.Register(s.api, huma.Operation{
		OperationID: "getReadingList",
		Method:      http.MethodGet,
		Path:        "/api/v1/plan/lists/{id}",
		Summary:     "Get reading list",
		Description: "Returns a single reading list with its books",
		Tags:        []string{"Plan"},
	}, s.handleGetReadingList)
}

// === DTOs ===

// ListReadingListsResponse contains the full plan catalog.
type ListReadingListsResponse struct {
	Lists []domain.ReadingList `json:"lists" doc:"Reading lists in display order"`
}

// ListReadingListsOutput wraps the catalog response for Huma.
type ListReadingListsOutput struct {
	Body ListReadingListsResponse
}

// GetReadingListInput contains parameters for getting a reading list.
type GetReadingListInput struct {
	ID int `path:"id" minimum:"1" maximum:"10" doc:"Reading list ID"`
}

// ReadingListOutput wraps a single reading list for Huma.
type ReadingListOutput struct {
	Body domain.ReadingList
}

// === Handlers ===

func (s *Server) handleListReadingLists(_ context.Context, _ *struct{}) (*ListReadingListsOutput, error) {
	return &ListReadingListsOutput{
		Body: ListReadingListsResponse{Lists: s.services.Plan.Lists()},
	}, nil
}

func (s *Server) handleGetReadingList(_ context.Context, input *GetReadingListInput) (*ReadingListOutput, error) {
	list, err := s.services.Plan.GetList(input.ID)
	if err != nil {
		return nil, err
	}
	return &ReadingListOutput{Body: list}, nil
}

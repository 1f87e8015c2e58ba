package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
	"github.com/hornerapp/horner-server/internal/service"
)

func (s *Server) registerReadingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTodayReadings",
		Method:      http.MethodGet,
		Path:        "/api/v1/readings/today",
		Summary:     "Get today's readings",
		Description: "Returns the ten assigned chapters for today, or for the date given",
		Tags:        []string{"Readings"},
	}, s.handleGetTodayReadings)

	huma.Register(s.api, huma.Operation{
		OperationID: "getReadingsForDay",
		Method:      http.MethodGet,
		Path:        "/api/v1/readings/day/{day}",
		Summary:     "Get readings for a day",
		Description: "Returns the ten assigned chapters for an arbitrary day of the year",
		Tags:        []string{"Readings"},
	}, s.handleGetReadingsForDay)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleReading",
		Method:      http.MethodPost,
		Path:        "/api/v1/readings/toggle",
		Summary:     "Toggle reading completion",
		Description: "Flips the completion state of one reading and reports any milestone crossed",
		Tags:        []string{"Readings"},
	}, s.handleToggleReading)
}

func (s *Server) registerProgressRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProgress",
		Method:      http.MethodGet,
		Path:        "/api/v1/progress",
		Summary:     "Get progress",
		Description: "Returns the account's full progress snapshot",
		Tags:        []string{"Progress"},
	}, s.handleGetProgress)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProgressStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/progress/stats",
		Summary:     "Get progress statistics",
		Description: "Returns per-list cycle statistics, totals, and milestone messages",
		Tags:        []string{"Progress"},
	}, s.handleGetProgressStats)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProgressCalendar",
		Method:      http.MethodGet,
		Path:        "/api/v1/progress/calendar",
		Summary:     "Get completion calendar",
		Description: "Returns per-day completion counts for the trailing window",
		Tags:        []string{"Progress"},
	}, s.handleGetProgressCalendar)

	huma.Register(s.api, huma.Operation{
		OperationID: "resetProgress",
		Method:      http.MethodPost,
		Path:        "/api/v1/progress/reset",
		Summary:     "Reset progress",
		Description: "Wipes all progress and starts the plan over from today",
		Tags:        []string{"Progress"},
	}, s.handleResetProgress)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateStartDate",
		Method:      http.MethodPatch,
		Path:        "/api/v1/progress/start-date",
		Summary:     "Update start date",
		Description: "Re-baselines the plan start date without touching completions",
		Tags:        []string{"Progress"},
	}, s.handleUpdateStartDate)
}

// === DTOs ===

// GetTodayReadingsInput contains parameters for today's readings.
type GetTodayReadingsInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Date      string `query:"date" doc:"Date override in YYYY-MM-DD, defaults to today"`
}

// TodayReadingsOutput wraps the today view for Huma.
type TodayReadingsOutput struct {
	Body service.TodayView
}

// GetReadingsForDayInput contains parameters for an arbitrary day.
type GetReadingsForDayInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Day       int    `path:"day" minimum:"1" doc:"Day of year, 1-based"`
}

// DayReadingsResponse contains the assignments for one day.
type DayReadingsResponse struct {
	DayOfYear int                   `json:"day_of_year" doc:"Day of year, 1-based"`
	Readings  []domain.TodayReading `json:"readings" doc:"One assignment per reading list"`
}

// DayReadingsOutput wraps the day readings response for Huma.
type DayReadingsOutput struct {
	Body DayReadingsResponse
}

// ToggleReadingRequest is the request body for toggling a reading.
type ToggleReadingRequest struct {
	DayOfYear int `json:"day_of_year" minimum:"1" doc:"Day of year, 1-based"`
	ListID    int `json:"list_id" minimum:"1" maximum:"10" doc:"Reading list ID"`
}

// ToggleReadingInput wraps the toggle request for Huma.
type ToggleReadingInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Body      ToggleReadingRequest
}

// ToggleReadingOutput wraps the toggle response for Huma.
type ToggleReadingOutput struct {
	Body service.ToggleResponse
}

// GetProgressInput contains parameters for reading the snapshot.
type GetProgressInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
}

// ProgressOutput wraps the progress snapshot for Huma.
type ProgressOutput struct {
	Body domain.Progress
}

// ProgressStatsOutput wraps the stats view for Huma.
type ProgressStatsOutput struct {
	Body service.StatsView
}

// GetProgressCalendarInput contains parameters for the completion calendar.
type GetProgressCalendarInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Days      int    `query:"days" default:"30" minimum:"1" maximum:"366" doc:"Trailing window size in days"`
}

// CalendarResponse contains the trailing completion calendar.
type CalendarResponse struct {
	Days []service.CalendarDay `json:"days" doc:"Oldest first, ending today"`
}

// CalendarOutput wraps the calendar response for Huma.
type CalendarOutput struct {
	Body CalendarResponse
}

// UpdateStartDateRequest is the request body for re-baselining the plan.
type UpdateStartDateRequest struct {
	StartDate string `json:"start_date" doc:"New start date in YYYY-MM-DD"`
}

// UpdateStartDateInput wraps the start date request for Huma.
type UpdateStartDateInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Body      UpdateStartDateRequest
}

// === Handlers ===

func (s *Server) handleGetTodayReadings(ctx context.Context, input *GetTodayReadingsInput) (*TodayReadingsOutput, error) {
	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, input.Date)
		if err != nil {
			return nil, apperrors.Validationf("date must be formatted YYYY-MM-DD, got %q", input.Date)
		}
		date = parsed
	}

	view, err := s.services.Progress.TodayReadings(ctx, resolveAccount(input.AccountID), date)
	if err != nil {
		return nil, err
	}
	return &TodayReadingsOutput{Body: *view}, nil
}

func (s *Server) handleGetReadingsForDay(ctx context.Context, input *GetReadingsForDayInput) (*DayReadingsOutput, error) {
	readings, err := s.services.Progress.ReadingsForDay(ctx, resolveAccount(input.AccountID), input.Day)
	if err != nil {
		return nil, err
	}
	return &DayReadingsOutput{
		Body: DayReadingsResponse{DayOfYear: input.Day, Readings: readings},
	}, nil
}

func (s *Server) handleToggleReading(ctx context.Context, input *ToggleReadingInput) (*ToggleReadingOutput, error) {
	resp, err := s.services.Progress.Toggle(ctx, resolveAccount(input.AccountID), service.ToggleRequest{
		DayOfYear: input.Body.DayOfYear,
		ListID:    input.Body.ListID,
	})
	if err != nil {
		return nil, err
	}
	return &ToggleReadingOutput{Body: *resp}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, input *GetProgressInput) (*ProgressOutput, error) {
	progress, err := s.services.Progress.Snapshot(ctx, resolveAccount(input.AccountID))
	if err != nil {
		return nil, err
	}
	return &ProgressOutput{Body: *progress}, nil
}

func (s *Server) handleGetProgressStats(ctx context.Context, input *GetProgressInput) (*ProgressStatsOutput, error) {
	stats, err := s.services.Progress.Stats(ctx, resolveAccount(input.AccountID))
	if err != nil {
		return nil, err
	}
	return &ProgressStatsOutput{Body: *stats}, nil
}

func (s *Server) handleGetProgressCalendar(ctx context.Context, input *GetProgressCalendarInput) (*CalendarOutput, error) {
	days, err := s.services.Progress.Calendar(ctx, resolveAccount(input.AccountID), input.Days)
	if err != nil {
		return nil, err
	}
	return &CalendarOutput{Body: CalendarResponse{Days: days}}, nil
}

func (s *Server) handleResetProgress(ctx context.Context, input *GetProgressInput) (*ProgressOutput, error) {
	progress, err := s.services.Progress.Reset(ctx, resolveAccount(input.AccountID))
	if err != nil {
		return nil, err
	}
	return &ProgressOutput{Body: *progress}, nil
}

func (s *Server) handleUpdateStartDate(ctx context.Context, input *UpdateStartDateInput) (*ProgressOutput, error) {
	progress, err := s.services.Progress.UpdateStartDate(ctx, resolveAccount(input.AccountID), input.Body.StartDate)
	if err != nil {
		return nil, err
	}
	return &ProgressOutput{Body: *progress}, nil
}

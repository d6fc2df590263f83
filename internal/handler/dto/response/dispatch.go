package response

import (
	"payping-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Field names follow the dashboard's existing consumers of this endpoint.
type DispatchResultResponse struct {
	ID            uuid.UUID `json:"id"`
	Client        string    `json:"client"`
	UserNotified  bool      `json:"userNotified"`
	ClientEmailed bool      `json:"clientEmailed"`
	Completed     bool      `json:"completed"`
}

type DispatchRunResponse struct {
	Success   bool                     `json:"success"`
	Processed int                      `json:"processed"`
	Results   []DispatchResultResponse `json:"results"`
}

func FromRunSummary(s *commands.RunSummary) DispatchRunResponse {
	results := make([]DispatchResultResponse, 0, len(s.Results))
	_ = copier.Copy(&results, &s.Results)
	return DispatchRunResponse{
		Success:   true,
		Processed: s.Processed,
		Results:   results,
	}
}

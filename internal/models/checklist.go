package models

import "time"

// ChecklistItem is one onboarding task.
type ChecklistItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
}

// ChecklistPhase groups items; a phase is complete when the backend says so.
type ChecklistPhase struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Items        []ChecklistItem `json:"items"`
	Completed    bool            `json:"completed"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Observations string          `json:"observations,omitempty"`
}

// Checklist is the onboarding checklist of one business.
// CurrentPhase indexes Phases.
type Checklist struct {
	ID           string           `json:"_id"`
	BusinessID   string           `json:"businessId"`
	Phases       []ChecklistPhase `json:"phases"`
	CurrentPhase int              `json:"currentPhase"`
	CreatedAt    time.Time        `json:"createdAt,omitzero"`
	UpdatedAt    time.Time        `json:"updatedAt,omitzero"`
}

// ChecklistProgress is the server-computed progress summary.
type ChecklistProgress struct {
	TotalPhases      int     `json:"totalPhases"`
	CompletedPhases  int     `json:"completedPhases"`
	CurrentPhase     int     `json:"currentPhase"`
	CurrentPhaseName string  `json:"currentPhaseName"`
	TotalItems       int     `json:"totalItems"`
	CompletedItems   int     `json:"completedItems"`
	OverallProgress  float64 `json:"overallProgress"`
}

// ChecklistResponse wraps checklist reads and writes.
type ChecklistResponse struct {
	Message   string    `json:"message"`
	Checklist Checklist `json:"checklist"`
}

// ChecklistProgressResponse wraps GET checklist/{businessId}/progress.
type ChecklistProgressResponse struct {
	Message  string            `json:"message"`
	Progress ChecklistProgress `json:"progress"`
}

type UpdateChecklistItemRequest struct {
	Completed   bool   `json:"completed"`
	CompletedBy string `json:"completedBy,omitempty"`
}

type UpdatePhaseObservationsRequest struct {
	Observations string `json:"observations"`
}

package views

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ObservationsEditor edits the observations of one checklist phase at a time.
type ObservationsEditor struct {
	store PhaseObservations

	mu      sync.Mutex
	editing string
	draft   string
	saving  bool
}

func NewObservationsEditor(store PhaseObservations) *ObservationsEditor {
	return &ObservationsEditor{store: store}
}

// ObservationsState is what the UI renders.
type ObservationsState struct {
	EditingPhase string `json:"editingPhase,omitempty"`
	Draft        string `json:"draft"`
	IsSaving     bool   `json:"isSaving"`
	CanSave      bool   `json:"canSave"`
}

func (e *ObservationsEditor) State() ObservationsState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ObservationsState{
		EditingPhase: e.editing,
		Draft:        e.draft,
		IsSaving:     e.saving,
		CanSave:      e.canSave(),
	}
}

// Observations returns the stored observations of phaseID, or "".
func (e *ObservationsEditor) Observations(phaseID string) string {
	if p := e.store.PhaseByID(phaseID); p != nil {
		return p.Observations
	}
	return ""
}

func (e *ObservationsEditor) HasObservations(phaseID string) bool {
	return e.Observations(phaseID) != ""
}

// Start loads phaseID's current observations into the draft.
func (e *ObservationsEditor) Start(phaseID string) {
	current := e.Observations(phaseID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = phaseID
	e.draft = current
}

func (e *ObservationsEditor) SetDraft(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = text
}

func (e *ObservationsEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = ""
	e.draft = ""
}

func (e *ObservationsEditor) IsBeingEdited(phaseID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing != "" && e.editing == phaseID
}

func (e *ObservationsEditor) CanSave() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canSave()
}

func (e *ObservationsEditor) canSave() bool {
	return strings.TrimSpace(e.draft) != "" && !e.saving
}

func (e *ObservationsEditor) Placeholder(phaseName string) string {
	return fmt.Sprintf("Add observations for phase %q...", phaseName)
}

// Save writes the trimmed draft to phaseID. A blank draft is rejected with a
// warning and no call. On success the editor closes; on failure the draft is kept.
func (e *ObservationsEditor) Save(ctx context.Context, businessID, phaseID string) Notice {
	e.mu.Lock()
	draft := strings.TrimSpace(e.draft)
	if draft == "" {
		e.mu.Unlock()
		return Notice{Level: LevelWarning, Message: "observations cannot be empty"}
	}
	if e.saving {
		e.mu.Unlock()
		return Notice{Level: LevelWarning, Message: "observations are already being saved"}
	}
	e.saving = true
	e.mu.Unlock()

	err := e.store.UpdatePhaseObservations(ctx, businessID, phaseID, draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		return Notice{Level: LevelError, Message: errorMessage(err, "could not update the observations")}
	}
	e.editing = ""
	e.draft = ""
	return Notice{Level: LevelSuccess, Message: "observations updated"}
}

func errorMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

package views

import (
	"context"
	"sync"

	"backoffice/internal/models"
)

// BusinessForm is the edit-mode toggle around the selected business's details.
type BusinessForm struct {
	store BusinessUpdater

	mu      sync.Mutex
	editing bool
	saving  bool
}

func NewBusinessForm(store BusinessUpdater) *BusinessForm {
	return &BusinessForm{store: store}
}

type BusinessFormState struct {
	IsEditing bool `json:"isEditing"`
	IsSaving  bool `json:"isSaving"`
}

func (f *BusinessForm) State() BusinessFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return BusinessFormState{IsEditing: f.editing, IsSaving: f.saving}
}

func (f *BusinessForm) Edit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = true
}

func (f *BusinessForm) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = false
}

// Save submits patch. The form closes on success and stays open on failure.
func (f *BusinessForm) Save(ctx context.Context, patch models.BusinessPatch) Notice {
	f.mu.Lock()
	f.saving = true
	f.mu.Unlock()

	err := f.store.UpdateBusinessDetails(ctx, patch)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = false
	if err != nil {
		f.editing = true
		return Notice{Level: LevelError, Message: errorMessage(err, "could not update the business")}
	}
	f.editing = false
	return Notice{Level: LevelSuccess, Message: "business updated"}
}

package models

import (
	"encoding/json"
	"time"
)

// Business belongs to exactly one client. Fields the backend adds that this
// type does not name are preserved in Extra and written back on encode.
type Business struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Address        string         `json:"address,omitempty"`
	LogoURL        string         `json:"logoUrl,omitempty"`
	Category       string         `json:"category,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Website        string         `json:"website,omitempty"`
	ChecklistID    string         `json:"checklist,omitempty"`
	OnboardingStep int            `json:"onboardingStep,omitempty"`
	Managers       []Manager      `json:"managers,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitzero"`
	UpdatedAt      time.Time      `json:"updatedAt,omitzero"`
	Extra          map[string]any `json:"-"`
}

var businessKnownFields = []string{
	"_id", "name", "description", "address", "logoUrl", "category", "phone",
	"email", "website", "checklist", "onboardingStep", "managers", "createdAt", "updatedAt",
}

type plainBusiness Business

func (b *Business) UnmarshalJSON(data []byte) error {
	var p plainBusiness
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range businessKnownFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		p.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			p.Extra[k] = val
		}
	}
	*b = Business(p)
	return nil
}

func (b Business) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(plainBusiness(b))
	if err != nil || len(b.Extra) == 0 {
		return known, err
	}
	merged := make(map[string]any, len(b.Extra)+len(businessKnownFields))
	for k, v := range b.Extra {
		merged[k] = v
	}
	var fields map[string]any
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// BusinessPatch is a partial business update; nil fields are not sent.
type BusinessPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p BusinessPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Address == nil && p.LogoURL == nil &&
		p.Category == nil && p.Phone == nil && p.Email == nil && p.Website == nil
}

// Manager is a person allowed to administer a business.
type Manager struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// NewManager is the create payload for a manager (no id).
type NewManager struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

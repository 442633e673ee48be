package httptransport

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/models"
	dErrors "backoffice/pkg/domain-errors"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "email and password are required")
	}
	return nil
}

// BusinessRefRequest names the business a meeting is assigned to.
type BusinessRefRequest struct {
	BusinessID string `json:"businessId"`
}

func (r *BusinessRefRequest) Validate() error {
	r.BusinessID = strings.TrimSpace(r.BusinessID)
	if r.BusinessID == "" {
		return dErrors.New(dErrors.CodeValidation, "businessId is required")
	}
	return nil
}

// SelectBusinessRequest points the selection at a loaded business. An empty
// id clears it.
type SelectBusinessRequest struct {
	BusinessID string `json:"businessId"`
}

func (r *SelectBusinessRequest) Validate() error {
	r.BusinessID = strings.TrimSpace(r.BusinessID)
	return nil
}

// ManagerRequest is the body of POST /console/business/managers.
type ManagerRequest struct {
	models.NewManager
}

func (r *ManagerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "manager name is required")
	}
	return nil
}

// BusinessPatchRequest carries the fields to change on the selected business.
type BusinessPatchRequest struct {
	models.BusinessPatch
}

func (r *BusinessPatchRequest) Validate() error {
	if r.IsEmpty() {
		return dErrors.New(dErrors.CodeValidation, "at least one field must be set")
	}
	return nil
}

// DateRangeRequest is a transactions filter. An inverted range is left to
// the store, which records it as the store error.
type DateRangeRequest struct {
	models.DateRange
}

func (r *DateRangeRequest) Validate() error {
	return nil
}

// ChecklistItemRequest updates one checklist item.
type ChecklistItemRequest struct {
	models.UpdateChecklistItemRequest
}

func (r *ChecklistItemRequest) Validate() error {
	r.CompletedBy = strings.TrimSpace(r.CompletedBy)
	return nil
}

// ObservationsRequest replaces a phase's observations.
type ObservationsRequest struct {
	Observations string `json:"observations"`
}

func (r *ObservationsRequest) Validate() error {
	return nil
}

// DraftRequest sets the observations editor draft.
type DraftRequest struct {
	Text string `json:"text"`
}

func (r *DraftRequest) Validate() error {
	return nil
}

// CreateMvpAccountRequest creates the MVP account of a client.
type CreateMvpAccountRequest struct {
	models.CreateMvpAccountRequest
}

func (r *CreateMvpAccountRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	return nil
}

// PasswordRequest is the body of PUT .../mvp-account/password.
type PasswordRequest struct {
	Password string `json:"password"`
}

func (r *PasswordRequest) Validate() error {
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// PaymentLinkRequest asks the payments provider for a checkout link.
type PaymentLinkRequest struct {
	models.PaymentLinkRequest
}

func (r *PaymentLinkRequest) Validate() error {
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	return nil
}

// ManualTransferRequest records a bank transfer received outside the provider.
type ManualTransferRequest struct {
	models.ManualTransfer
}

func (r *ManualTransferRequest) Validate() error {
	r.ClientID = strings.TrimSpace(r.ClientID)
	return nil
}

// queryInt reads a positive integer query parameter, falling back to def
// when it is absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, dErrors.New(dErrors.CodeValidation, key+" must be a positive integer")
	}
	return n, nil
}

// pathInt reads a positive integer URL parameter.
func pathInt(r *http.Request, key string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil || n < 1 {
		return 0, dErrors.New(dErrors.CodeValidation, key+" must be a positive integer")
	}
	return n, nil
}

// queryDateRange reads from/to as RFC 3339 timestamps or plain dates. The
// ordering of the bounds is checked by the store.
func queryDateRange(r *http.Request) (models.DateRange, error) {
	var out models.DateRange
	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{"from", &out.From},
		{"to", &out.To},
	} {
		raw := r.URL.Query().Get(p.key)
		if raw == "" {
			continue
		}
		t, err := parseTime(raw)
		if err != nil {
			return models.DateRange{}, dErrors.New(dErrors.CodeValidation, p.key+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
		}
		*p.dst = &t
	}
	return out, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/console/checklist"
	"backoffice/internal/console/clientbusiness"
	"backoffice/internal/console/mvp"
	"backoffice/internal/console/payments"
	"backoffice/internal/console/search"
	"backoffice/internal/console/session"
	"backoffice/internal/console/views"
	"backoffice/internal/models"
	dErrors "backoffice/pkg/domain-errors"
	"backoffice/pkg/platform/httputil"
	"backoffice/pkg/requestcontext"
)

// SessionProvider resolves the console of the authenticated session.
type SessionProvider interface {
	Get(sessionID, actorID string) (*session.Console, error)
}

// ConsoleHandler exposes the per-session stores. Every action answers with
// the snapshot of the store it touched; a store error sets the status.
type ConsoleHandler struct {
	sessions SessionProvider
	logger   *slog.Logger
}

func NewConsoleHandler(sessions SessionProvider, logger *slog.Logger) *ConsoleHandler {
	return &ConsoleHandler{sessions: sessions, logger: logger}
}

// ConsoleState is the whole console at once, for a page reload.
type ConsoleState struct {
	Clients      clientbusiness.Snapshot `json:"clients"`
	Checklist    ChecklistState          `json:"checklist"`
	Mvp          mvp.Snapshot            `json:"mvp"`
	Payments     payments.Snapshot       `json:"payments"`
	Search       search.Snapshot         `json:"search"`
	Observations views.ObservationsState `json:"observations"`
	BusinessForm views.BusinessFormState `json:"businessForm"`
}

// ChecklistState adds the derived phase views to the checklist snapshot.
type ChecklistState struct {
	checklist.Snapshot
	CurrentPhase *models.ChecklistPhase `json:"currentPhase"`
	IsComplete   bool                   `json:"isComplete"`
}

// NoticeResponse is returned by the view actions.
type NoticeResponse struct {
	Notice views.Notice `json:"notice"`
	State  any          `json:"state"`
}

// Register mounts the console routes; r is expected to be rooted at /console.
func (h *ConsoleHandler) Register(r chi.Router) {
	r.Get("/state", h.handleState)
	r.Post("/reset", h.handleReset)
	r.Post("/errors/clear", h.handleClearErrors)

	// client and business aggregate
	r.Get("/clients/{clientID}", h.handleFetchClientWithDetails)
	r.Get("/clients/{clientID}/businesses/{businessID}", h.handleFetchClientAndBusiness)
	r.Put("/selected-business", h.handleSelectBusiness)
	r.Patch("/business", h.handleUpdateBusiness)
	r.Post("/business/managers", h.handleAddManager)
	r.Delete("/business/managers/{managerID}", h.handleRemoveManager)
	r.Delete("/businesses/{businessID}", h.handleDeleteBusiness)
	r.Post("/business/edit", h.handleBusinessFormEdit)
	r.Delete("/business/edit", h.handleBusinessFormCancel)
	r.Post("/business/save", h.handleBusinessFormSave)

	// meetings
	r.Get("/clients/{clientID}/meeting-status", h.handleFetchMeetingStatus)
	r.Get("/clients/{clientID}/meetings", h.handleFetchMeetingsHistory)
	r.Get("/meetings/unassigned", h.handleFetchUnassignedMeetings)
	r.Post("/meetings/{meetingID}/confirm", h.handleConfirmPortfolioAccess)
	r.Post("/meetings/{meetingID}/complete", h.handleCompleteDataStrategyMeeting)
	r.Post("/meetings/{meetingID}/assign", h.handleAssignMeeting)
	r.Delete("/meetings/{meetingID}", h.handleDeleteMeeting)

	// transactions
	r.Get("/clients/{clientID}/transactions", h.handleFetchTransactions)
	r.Put("/clients/{clientID}/transactions/filter", h.handleSetTransactionFilter)
	r.Delete("/transactions/{transactionID}", h.handleRemoveTransaction)

	h.registerChecklist(r)
	h.registerAccounts(r)
	h.registerPayments(r)
	h.registerSearch(r)
}

// console resolves the caller's console or writes the error response.
func (h *ConsoleHandler) console(w http.ResponseWriter, r *http.Request) (*session.Console, bool) {
	ctx := r.Context()
	c, err := h.sessions.Get(requestcontext.SessionID(ctx), requestcontext.ActorID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "console session unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnauthorized, "console session unavailable"))
		return nil, false
	}
	return c, true
}

// writeSnapshot answers with snap, using err for the status when set.
func (h *ConsoleHandler) writeSnapshot(w http.ResponseWriter, r *http.Request, snap any, err error) {
	status := http.StatusOK
	if err != nil {
		code := httputil.CodeOf(err)
		status = dErrors.ToHTTPStatus(code)
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "console action failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	httputil.WriteJSON(w, status, snap)
}

func (h *ConsoleHandler) writeClients(w http.ResponseWriter, r *http.Request, c *session.Console) {
	snap := c.Clients.Snapshot()
	h.writeSnapshot(w, r, snap, snap.Err)
}

func checklistState(c *session.Console) ChecklistState {
	return ChecklistState{
		Snapshot:     c.Checklist.Snapshot(),
		CurrentPhase: c.Checklist.CurrentPhase(),
		IsComplete:   c.Checklist.IsComplete(),
	}
}

func (h *ConsoleHandler) handleState(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ConsoleState{
		Clients:      c.Clients.Snapshot(),
		Checklist:    checklistState(c),
		Mvp:          c.Mvp.Snapshot(),
		Payments:     c.Payments.Snapshot(),
		Search:       c.Search.Snapshot(),
		Observations: c.Observations.State(),
		BusinessForm: c.BusinessForm.State(),
	})
}

func (h *ConsoleHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConsoleHandler) handleClearErrors(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.ClearError()
	c.Checklist.ClearError()
	c.Payments.ClearError()
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConsoleHandler) handleFetchClientWithDetails(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.FetchClientWithDetails(r.Context(), chi.URLParam(r, "clientID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleFetchClientAndBusiness(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.FetchClientAndBusiness(r.Context(), chi.URLParam(r, "clientID"), chi.URLParam(r, "businessID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleSelectBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SelectBusinessRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if !c.Clients.SetSelectedBusiness(req.BusinessID) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "business is not part of the loaded client"))
		return
	}
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleUpdateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[BusinessPatchRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	err := c.Clients.UpdateBusinessDetails(ctx, req.BusinessPatch)
	h.writeSnapshot(w, r, c.Clients.Snapshot(), err)
}

func (h *ConsoleHandler) handleAddManager(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ManagerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c.Clients.AddManager(ctx, req.NewManager)
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleRemoveManager(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.RemoveManager(r.Context(), chi.URLParam(r, "managerID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleDeleteBusiness(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.DeleteBusiness(r.Context(), chi.URLParam(r, "businessID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleBusinessFormEdit(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.BusinessForm.Edit()
	httputil.WriteJSON(w, http.StatusOK, c.BusinessForm.State())
}

func (h *ConsoleHandler) handleBusinessFormCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.BusinessForm.Cancel()
	httputil.WriteJSON(w, http.StatusOK, c.BusinessForm.State())
}

func (h *ConsoleHandler) handleBusinessFormSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[BusinessPatchRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	notice := c.BusinessForm.Save(ctx, req.BusinessPatch)
	httputil.WriteJSON(w, http.StatusOK, NoticeResponse{Notice: notice, State: c.BusinessForm.State()})
}

func (h *ConsoleHandler) handleFetchMeetingStatus(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.FetchMeetingStatus(r.Context(), chi.URLParam(r, "clientID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleFetchMeetingsHistory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.FetchMeetingsHistory(r.Context(), chi.URLParam(r, "clientID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleFetchUnassignedMeetings(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Clients.FetchUnassignedMeetings(r.Context(), page)
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleConfirmPortfolioAccess(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.ConfirmPortfolioAccess(r.Context(), chi.URLParam(r, "meetingID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleCompleteDataStrategyMeeting(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.CompleteDataStrategyMeeting(r.Context(), chi.URLParam(r, "meetingID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleAssignMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[BusinessRefRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c.Clients.AssignMeeting(ctx, chi.URLParam(r, "meetingID"), req.BusinessID)
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleDeleteMeeting(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.DeleteMeeting(r.Context(), chi.URLParam(r, "meetingID"))
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleFetchTransactions(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	// limit 0 lets the store apply its configured page size.
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Clients.FetchTransactions(r.Context(), chi.URLParam(r, "clientID"), page, limit)
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleSetTransactionFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DateRangeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c.Clients.SetTransactionFilter(ctx, chi.URLParam(r, "clientID"), req.DateRange)
	h.writeClients(w, r, c)
}

func (h *ConsoleHandler) handleRemoveTransaction(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Clients.RemoveTransaction(r.Context(), chi.URLParam(r, "transactionID"))
	h.writeClients(w, r, c)
}

package httptransport

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/console/session"
	"backoffice/pkg/platform/httputil"
	"backoffice/pkg/requestcontext"
)

func (h *ConsoleHandler) registerChecklist(r chi.Router) {
	r.Route("/businesses/{businessID}/checklist", func(r chi.Router) {
		r.Get("/", h.handleFetchChecklist)
		r.Get("/progress", h.handleFetchProgress)
		r.Post("/next-phase", h.handleMoveToNextPhase)
		r.Put("/phases/{phaseID}/items/{itemID}", h.handleUpdateItem)
		r.Post("/phases/{phaseID}/items/{itemID}/toggle", h.handleToggleItem)
		r.Put("/phases/{phaseID}/observations", h.handleUpdateObservations)
		r.Post("/phases/{phaseID}/observations/edit", h.handleObservationsStart)
		r.Put("/phases/{phaseID}/observations/draft", h.handleObservationsDraft)
		r.Delete("/phases/{phaseID}/observations/edit", h.handleObservationsCancel)
		r.Post("/phases/{phaseID}/observations/save", h.handleObservationsSave)
	})
}

func (h *ConsoleHandler) registerAccounts(r chi.Router) {
	r.Route("/clients/{clientID}/mvp-accounts", func(r chi.Router) {
		r.Get("/", h.handleFetchAccounts)
		r.Post("/", h.handleCreateAccount)
		r.Put("/password", h.handleChangePassword)
		r.Delete("/", h.handleDeleteAccounts)
	})
}

func (h *ConsoleHandler) registerPayments(r chi.Router) {
	r.Get("/payments/summary", h.handleFetchPaymentsSummary)
	r.Post("/payments/links", h.handleGeneratePaymentLink)
	r.Post("/payments/transfers", h.handleRegisterTransfer)
}

func (h *ConsoleHandler) registerSearch(r chi.Router) {
	r.Get("/clients", h.handleFetchAllClients)
	r.Get("/search", h.handleSearch)
	r.Get("/search/pages/{page}", h.handleSearchPage)
}

func (h *ConsoleHandler) writeChecklist(w http.ResponseWriter, r *http.Request, c *session.Console, err error) {
	state := checklistState(c)
	if err == nil {
		err = state.Err
	}
	h.writeSnapshot(w, r, state, err)
}

func (h *ConsoleHandler) handleFetchChecklist(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Checklist.FetchChecklist(r.Context(), chi.URLParam(r, "businessID"))
	h.writeChecklist(w, r, c, nil)
}

func (h *ConsoleHandler) handleFetchProgress(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Checklist.FetchProgress(r.Context(), chi.URLParam(r, "businessID"))
	h.writeChecklist(w, r, c, nil)
}

func (h *ConsoleHandler) handleMoveToNextPhase(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	err := c.Checklist.MoveToNextPhase(r.Context(), chi.URLParam(r, "businessID"))
	h.writeChecklist(w, r, c, err)
}

func (h *ConsoleHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ChecklistItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if req.Completed && req.CompletedBy == "" {
		req.CompletedBy = requestcontext.ActorID(ctx)
	}
	err := c.Checklist.UpdateItem(ctx, chi.URLParam(r, "businessID"), chi.URLParam(r, "phaseID"),
		chi.URLParam(r, "itemID"), req.UpdateChecklistItemRequest)
	h.writeChecklist(w, r, c, err)
}

func (h *ConsoleHandler) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	err := c.Checklist.ToggleItemCompletion(ctx, chi.URLParam(r, "businessID"), chi.URLParam(r, "phaseID"),
		chi.URLParam(r, "itemID"), requestcontext.ActorID(ctx))
	h.writeChecklist(w, r, c, err)
}

func (h *ConsoleHandler) handleUpdateObservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ObservationsRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	err := c.Checklist.UpdatePhaseObservations(ctx, chi.URLParam(r, "businessID"), chi.URLParam(r, "phaseID"),
		strings.TrimSpace(req.Observations))
	h.writeChecklist(w, r, c, err)
}

func (h *ConsoleHandler) handleObservationsStart(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Observations.Start(chi.URLParam(r, "phaseID"))
	httputil.WriteJSON(w, http.StatusOK, c.Observations.State())
}

func (h *ConsoleHandler) handleObservationsDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DraftRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c.Observations.SetDraft(req.Text)
	httputil.WriteJSON(w, http.StatusOK, c.Observations.State())
}

func (h *ConsoleHandler) handleObservationsCancel(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Observations.Cancel()
	httputil.WriteJSON(w, http.StatusOK, c.Observations.State())
}

func (h *ConsoleHandler) handleObservationsSave(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	notice := c.Observations.Save(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "phaseID"))
	httputil.WriteJSON(w, http.StatusOK, NoticeResponse{Notice: notice, State: c.Observations.State()})
}

func (h *ConsoleHandler) handleFetchAccounts(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	err := c.Mvp.FetchForClient(r.Context(), chi.URLParam(r, "clientID"))
	h.writeSnapshot(w, r, c.Mvp.Snapshot(), err)
}

func (h *ConsoleHandler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateMvpAccountRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	account, err := c.Mvp.Create(ctx, chi.URLParam(r, "clientID"), req.CreateMvpAccountRequest)
	if err != nil {
		h.writeSnapshot(w, r, c.Mvp.Snapshot(), err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, account)
}

func (h *ConsoleHandler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PasswordRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	err := c.Mvp.ChangePassword(ctx, chi.URLParam(r, "clientID"), req.Password)
	h.writeSnapshot(w, r, c.Mvp.Snapshot(), err)
}

func (h *ConsoleHandler) handleDeleteAccounts(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	err := c.Mvp.Delete(r.Context(), chi.URLParam(r, "clientID"))
	h.writeSnapshot(w, r, c.Mvp.Snapshot(), err)
}

func (h *ConsoleHandler) handleFetchPaymentsSummary(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	rng, err := queryDateRange(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Payments.FetchSummary(r.Context(), rng)
	snap := c.Payments.Snapshot()
	h.writeSnapshot(w, r, snap, snap.Err)
}

func (h *ConsoleHandler) handleGeneratePaymentLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PaymentLinkRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	// A failed link is a result the form renders, not a transport error.
	httputil.WriteJSON(w, http.StatusOK, c.Payments.GeneratePaymentLink(ctx, req.PaymentLinkRequest))
}

func (h *ConsoleHandler) handleRegisterTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ManualTransferRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	err := c.Payments.RegisterManualTransfer(ctx, req.ManualTransfer)
	h.writeSnapshot(w, r, c.Payments.Snapshot(), err)
}

func (h *ConsoleHandler) handleFetchAllClients(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Search.FetchAllClients(r.Context())
	snap := c.Search.Snapshot()
	h.writeSnapshot(w, r, snap, snap.Err)
}

func (h *ConsoleHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	c.Search.ExecuteSearch(r.Context(), r.URL.Query().Get("q"))
	snap := c.Search.Snapshot()
	h.writeSnapshot(w, r, snap, snap.Err)
}

func (h *ConsoleHandler) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}
	page, err := pathInt(r, "page")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Search.GoToPage(r.Context(), page)
	snap := c.Search.Snapshot()
	h.writeSnapshot(w, r, snap, snap.Err)
}

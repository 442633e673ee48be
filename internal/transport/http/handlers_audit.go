package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	audit "backoffice/pkg/platform/audit"
	"backoffice/pkg/platform/httputil"
	"backoffice/pkg/requestcontext"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditReader reads back the console audit trail.
type AuditReader interface {
	List(ctx context.Context, subject string) ([]audit.Event, error)
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

type AuditHandler struct {
	reader AuditReader
	logger *slog.Logger
}

func NewAuditHandler(reader AuditReader, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{reader: reader, logger: logger}
}

// AuditResponse wraps the events of GET /console/audit.
type AuditResponse struct {
	Events []audit.Event `json:"events"`
}

// Register mounts GET /audit on a router rooted at /console.
func (h *AuditHandler) Register(r chi.Router) {
	r.Get("/audit", h.handleList)
}

// handleList returns the events about ?subject= (a client, business or
// email), or the most recent ?limit= events when no subject is given.
func (h *AuditHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		events []audit.Event
		err    error
	)
	if subject := strings.TrimSpace(r.URL.Query().Get("subject")); subject != "" {
		events, err = h.reader.List(ctx, subject)
	} else {
		limit, perr := queryInt(r, "limit", defaultAuditLimit)
		if perr != nil {
			httputil.WriteError(w, perr)
			return
		}
		events, err = h.reader.Recent(ctx, min(limit, maxAuditLimit))
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read audit trail",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, AuditResponse{Events: events})
}

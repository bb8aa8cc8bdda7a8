package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/service/report"
)

type auditService interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error)
}

// AuditHandler serves the audit trail.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// List handles GET /api/audit. Date and user filters follow the report
// rules: malformed values mean "no bound". kind takes a comma separated list.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.ParseRequest("", q.Get("from_date"), q.Get("to_date"), q.Get("user_id"))

	f := domain.AuditFilter{
		UserID: req.UserID,
		From:   req.From,
		To:     req.To,
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	for _, k := range strings.Split(q.Get("kind"), ",") {
		kind := domain.AuditKind(strings.TrimSpace(k))
		if kind == "" {
			continue
		}
		if !kind.IsValid() {
			writeDomainError(w, r, h.log, domain.NewValidationError("kind", "unknown audit kind"))
			return
		}
		f.Kinds = append(f.Kinds, kind)
	}

	entries, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[auditResponse]{
		Items:  toAuditResponses(entries),
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

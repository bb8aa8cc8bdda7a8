package rest

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/export"
	"github.com/heartmarshall/labsample-backend/internal/service/report"
)

type reportService interface {
	Build(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
	Export(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
}

// ReportHandler serves report tables and their downloads.
type ReportHandler struct {
	svc     reportService
	formats []string
	render  export.Renderer
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler. formats lists the enabled
// export formats; others answer 404.
func NewReportHandler(svc reportService, formats []string, render export.Renderer, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, formats: formats, render: render, log: logger.With("handler", "reports")}
}

// Get handles GET /api/reports.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Build(r.Context(), reportRequest(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// Export handles GET /api/reports/export/{format}.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, ok := export.ParseFormat(chi.URLParam(r, "format"))
	if !ok || !slices.Contains(h.formats, string(format)) {
		writeError(w, http.StatusNotFound, "unknown export format")
		return
	}

	rep, err := h.svc.Export(r.Context(), reportRequest(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	data, err := h.render.Render(format, rep)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	reportAttachment(w, format, rep, data)
}

func reportRequest(r *http.Request) domain.ReportRequest {
	q := r.URL.Query()
	return report.ParseRequest(q.Get("report_type"), q.Get("from_date"), q.Get("to_date"), q.Get("user_id"))
}

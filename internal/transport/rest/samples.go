package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/export"
	"github.com/heartmarshall/labsample-backend/internal/service/sample"
	"github.com/heartmarshall/labsample-backend/internal/service/workflow"
)

type sampleService interface {
	List(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error)
	Export(ctx context.Context, in sample.ListInput) ([]domain.Sample, int, error)
	Get(ctx context.Context, number string) (*domain.Sample, error)
	Detail(ctx context.Context, number string) (*sample.Detail, error)
	Create(ctx context.Context, in sample.CreateInput) (*domain.Sample, error)
	Update(ctx context.Context, in sample.UpdateInput) (*domain.Sample, error)
	Delete(ctx context.Context, number string) error
}

type workflowService interface {
	ApplyAction(ctx context.Context, number string, action domain.WorkflowAction) (*workflow.Transition, error)
}

// SampleHandler serves sample CRUD, workflow actions and the list export.
type SampleHandler struct {
	samples  sampleService
	workflow workflowService
	render   export.Renderer
	log      *slog.Logger
}

// NewSampleHandler creates a SampleHandler.
func NewSampleHandler(samples sampleService, wf workflowService, render export.Renderer, logger *slog.Logger) *SampleHandler {
	return &SampleHandler{samples: samples, workflow: wf, render: render, log: logger.With("handler", "samples")}
}

type createSampleRequest struct {
	SampleNumber  string `json:"sample_number"`
	SampleType    string `json:"sample_type"`
	Category      string `json:"category"`
	PersonName    string `json:"person_name"`
	CollectedDate string `json:"collected_date"`
	Location      string `json:"location"`
	RFIDUID       string `json:"rfid_uid"`
}

type updateSampleRequest struct {
	SampleType    *string `json:"sample_type"`
	Category      *string `json:"category"`
	PersonName    *string `json:"person_name"`
	CollectedDate *string `json:"collected_date"`
	Location      *string `json:"location"`
}

type actionRequest struct {
	Action string `json:"action"`
}

type sampleDetailResponse struct {
	Sample sampleResponse  `json:"sample"`
	Logs   []auditResponse `json:"logs"`
	CanAct bool            `json:"can_act"`
}

type transitionResponse struct {
	Sample sampleResponse `json:"sample"`
	From   string         `json:"from"`
	Entry  auditResponse  `json:"entry"`
}

type transitionErrorResponse struct {
	Error  string          `json:"error"`
	Sample *sampleResponse `json:"sample,omitempty"`
}

// List handles GET /api/samples.
func (h *SampleHandler) List(w http.ResponseWriter, r *http.Request) {
	in, err := listInput(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	samples, total, err := h.samples.List(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[sampleResponse]{
		Items:  toSampleResponses(samples),
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
}

// Export handles GET /api/samples/export. The filtered list is rendered as
// xlsx unless ?format= names another enabled format. A list cut at the row
// cap carries X-Report-Truncated: true.
func (h *SampleHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := export.FormatXLSX
	if v := r.URL.Query().Get("format"); v != "" {
		f, ok := export.ParseFormat(v)
		if !ok {
			writeDomainError(w, r, h.log, domain.NewValidationError("format", "unsupported format"))
			return
		}
		format = f
	}

	in, err := listInput(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	samples, total, err := h.samples.Export(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rep := export.SampleList(samples)
	rep.Truncated = total > len(samples)
	data, err := h.render.Render(format, rep)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	reportAttachment(w, format, rep, data)
}

// Get handles GET /api/samples/{number}.
func (h *SampleHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.samples.Detail(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sampleDetailResponse{
		Sample: toSampleResponse(&d.Sample),
		Logs:   toAuditResponses(d.Logs),
		CanAct: d.CanAct,
	})
}

// Create handles POST /api/samples.
func (h *SampleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSampleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	collected, err := parseDateField("collected_date", req.CollectedDate)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	s, err := h.samples.Create(r.Context(), sample.CreateInput{
		SampleNumber:  req.SampleNumber,
		SampleType:    req.SampleType,
		Category:      req.Category,
		PersonName:    req.PersonName,
		CollectedDate: collected,
		Location:      req.Location,
		RFIDUID:       req.RFIDUID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSampleResponse(s))
}

// Update handles PUT /api/samples/{number}. Only descriptive attributes can
// change; status moves through the actions endpoint.
func (h *SampleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSampleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	in := sample.UpdateInput{
		SampleNumber: chi.URLParam(r, "number"),
		SampleType:   req.SampleType,
		Category:     req.Category,
		PersonName:   req.PersonName,
		Location:     req.Location,
	}
	if req.CollectedDate != nil {
		d, err := parseDateField("collected_date", *req.CollectedDate)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		in.CollectedDate = &d
	}

	s, err := h.samples.Update(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSampleResponse(s))
}

// Delete handles DELETE /api/samples/{number}.
func (h *SampleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.samples.Delete(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Action handles POST /api/samples/{number}/actions. A refused transition
// answers 409 with the unchanged sample.
func (h *SampleHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	number := chi.URLParam(r, "number")
	action := domain.WorkflowAction(strings.TrimSpace(req.Action))

	t, err := h.workflow.ApplyAction(r.Context(), number, action)
	if err != nil {
		var te *domain.TransitionError
		if errors.As(err, &te) {
			h.writeTransitionError(w, r, number, te)
			return
		}
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, transitionResponse{
		Sample: toSampleResponse(&t.Sample),
		From:   t.From.String(),
		Entry:  toAuditResponse(&t.Entry),
	})
}

func (h *SampleHandler) writeTransitionError(w http.ResponseWriter, r *http.Request, number string, te *domain.TransitionError) {
	resp := transitionErrorResponse{Error: te.Error()}
	if s, err := h.samples.Get(r.Context(), number); err == nil {
		sr := toSampleResponse(s)
		resp.Sample = &sr
	} else {
		h.log.WarnContext(r.Context(), "reload sample after refused action", slog.String("error", err.Error()))
	}
	writeJSON(w, http.StatusConflict, resp)
}

func listInput(r *http.Request) (sample.ListInput, error) {
	q := r.URL.Query()
	in := sample.ListInput{
		Query:      q.Get("q"),
		SampleType: q.Get("sample_type"),
		Category:   q.Get("category"),
		Limit:      queryInt(r, "limit", 0),
		Offset:     queryInt(r, "offset", 0),
	}
	if v := strings.TrimSpace(q.Get("date")); v != "" {
		d, err := parseDateField("date", v)
		if err != nil {
			return sample.ListInput{}, err
		}
		in.CollectedDate = &d
	}
	return in, nil
}

func parseDateField(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return d, nil
}

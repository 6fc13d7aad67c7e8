package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
	"vaxreg/pkg/platform/httputil"
	"vaxreg/pkg/requestcontext"
)

// Service defines the record operations exposed over HTTP.
type Service interface {
	RegisterPatient(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error)
	AdministerDose(ctx context.Context, req models.AdministerDoseRequest) (*models.Dose, error)
	GetPatient(ctx context.Context, id models.PatientID) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]*models.Patient, error)
	ListDoses(ctx context.Context, id models.PatientID) ([]*models.Dose, error)
	LastDose(ctx context.Context, id models.PatientID) (*models.Dose, error)
	Vaccines() []vaccine.Definition
	Centres() []string
}

// Handler serves the patient and dose endpoints.
type Handler struct {
	logger  *slog.Logger
	records Service
}

func New(records Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, records: records}
}

// Register registers the record routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/vaccines", h.handleListVaccines)
	r.Get("/centres", h.handleListCentres)
	r.Route("/patients", func(r chi.Router) {
		r.Post("/", h.handleRegisterPatient)
		r.Get("/", h.handleListPatients)
		r.Get("/{id}", h.handleGetPatient)
		r.Get("/{id}/doses", h.handleListDoses)
		r.Get("/{id}/doses/last", h.handleLastDose)
	})
	r.Post("/doses", h.handleAdministerDose)
}

func (h *Handler) handleListVaccines(w http.ResponseWriter, _ *http.Request) {
	defs := h.records.Vaccines()
	out := make([]vaccineResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, toVaccineResponse(d))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"vaccines": out})
}

func (h *Handler) handleListCentres(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"centres": h.records.Centres()})
}

func (h *Handler) handleRegisterPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req registerPatientRequest
	if !h.decode(w, r, &req) {
		return
	}

	patient, err := h.records.RegisterPatient(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, "register patient rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toPatientResponse(patient))
}

func (h *Handler) handleListPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patients, err := h.records.ListPatients(ctx)
	if err != nil {
		h.writeError(ctx, w, "list patients failed", err)
		return
	}
	out := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"patients": out})
}

func (h *Handler) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patient, err := h.records.GetPatient(ctx, models.PatientID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(ctx, w, "get patient failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPatientResponse(patient))
}

func (h *Handler) handleListDoses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doses, err := h.records.ListDoses(ctx, models.PatientID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(ctx, w, "list doses failed", err)
		return
	}
	out := make([]doseResponse, 0, len(doses))
	for _, d := range doses {
		out = append(out, toDoseResponse(d))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"doses": out})
}

func (h *Handler) handleLastDose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dose, err := h.records.LastDose(ctx, models.PatientID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(ctx, w, "last dose lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDoseResponse(dose))
}

func (h *Handler) handleAdministerDose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req administerDoseRequest
	if !h.decode(w, r, &req) {
		return
	}

	dose, err := h.records.AdministerDose(ctx, req.toModel())
	if err != nil {
		h.writeError(ctx, w, "administer dose rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toDoseResponse(dose))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"vaxreg/internal/audit"
	"vaxreg/internal/platform/metrics"
	"vaxreg/internal/records/models"
	"vaxreg/internal/records/workflow"
	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
	"vaxreg/pkg/platform/sentinel"
	"vaxreg/pkg/requestcontext"
)

// Store is the append-only record store the workflows run against.
type Store interface {
	LoadPatients(ctx context.Context) ([]*models.Patient, error)
	LoadDoses(ctx context.Context) ([]*models.Dose, error)
	CountPatients(ctx context.Context) (int, error)
	FindPatientByID(ctx context.Context, id models.PatientID) (*models.Patient, error)
	DosesForPatient(ctx context.Context, id models.PatientID) ([]*models.Dose, error)
	AppendPatient(ctx context.Context, patient *models.Patient) error
	AppendDose(ctx context.Context, dose *models.Dose) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service runs the register and administer workflows. Each submission holds
// the service lock from its store snapshot until its append completes, so two
// submissions in one process never plan against the same snapshot.
type Service struct {
	store          Store
	rules          workflow.Rules
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	mu             sync.Mutex
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service over store using rules for vaccines and centres.
func New(store Store, rules workflow.Rules, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("record store is required")
	}
	if rules.Vaccines.Len() == 0 {
		return nil, fmt.Errorf("at least one vaccine must be configured")
	}
	if len(rules.Centres) == 0 {
		return nil, fmt.Errorf("at least one vaccination centre must be configured")
	}
	s := &Service{store: store, rules: rules}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterPatient validates req and appends a new patient under the next id.
// Nothing is written when validation fails.
func (s *Service) RegisterPatient(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error) {
	defer s.observe(metrics.WorkflowRegister, time.Now())
	req.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.store.CountPatients(ctx)
	if err != nil {
		err = s.storageError(err, "failed to read patient records")
		s.reject(ctx, audit.ActionPatientRegistered, metrics.WorkflowRegister, "", err)
		return nil, err
	}

	patient, err := workflow.PlanRegistration(req, count, s.rules)
	if err != nil {
		s.reject(ctx, audit.ActionPatientRegistered, metrics.WorkflowRegister, "", err)
		return nil, err
	}

	if err := s.store.AppendPatient(ctx, patient); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			err = dErrors.New(dErrors.CodeConflict, fmt.Sprintf("patient ID %s already exists", patient.ID))
		} else {
			err = s.storageError(err, "failed to save patient record")
		}
		s.reject(ctx, audit.ActionPatientRegistered, metrics.WorkflowRegister, string(patient.ID), err)
		return nil, err
	}

	s.logAudit(ctx, audit.Event{
		Action:    audit.ActionPatientRegistered,
		Outcome:   audit.OutcomeAccepted,
		PatientID: string(patient.ID),
		Detail:    string(patient.VaccineCode),
	})
	if s.metrics != nil {
		s.metrics.IncrementPatientsRegistered()
	}
	return patient, nil
}

// AdministerDose validates req against the patient's latest recorded dose and
// appends the dose on success.
func (s *Service) AdministerDose(ctx context.Context, req models.AdministerDoseRequest) (*models.Dose, error) {
	defer s.observe(metrics.WorkflowAdminister, time.Now())
	req.Normalize()
	patientID := models.PatientID(req.PatientID)

	s.mu.Lock()
	defer s.mu.Unlock()

	patient, last, err := s.snapshot(ctx, patientID)
	if err != nil {
		s.reject(ctx, audit.ActionDoseAdministered, metrics.WorkflowAdminister, req.PatientID, err)
		return nil, err
	}

	dose, err := workflow.PlanDose(req, patient, last, s.rules)
	if err != nil {
		s.reject(ctx, audit.ActionDoseAdministered, metrics.WorkflowAdminister, req.PatientID, err)
		return nil, err
	}

	if err := s.store.AppendDose(ctx, dose); err != nil {
		err = s.storageError(err, "failed to save vaccination record")
		s.reject(ctx, audit.ActionDoseAdministered, metrics.WorkflowAdminister, req.PatientID, err)
		return nil, err
	}

	s.logAudit(ctx, audit.Event{
		Action:    audit.ActionDoseAdministered,
		Outcome:   audit.OutcomeAccepted,
		PatientID: string(dose.PatientID),
		Detail:    fmt.Sprintf("%s %s %s", dose.VaccineCode, dose.Label, dose.DateString()),
	})
	if s.metrics != nil {
		s.metrics.IncrementDosesAdministered(string(dose.Label))
	}
	return dose, nil
}

// snapshot returns the patient (nil when unknown) and their latest dose.
func (s *Service) snapshot(ctx context.Context, id models.PatientID) (*models.Patient, *models.Dose, error) {
	patient, err := s.store.FindPatientByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, s.storageError(err, "failed to read patient records")
	}
	doses, err := s.store.DosesForPatient(ctx, id)
	if err != nil {
		return nil, nil, s.storageError(err, "failed to read vaccination records")
	}
	return patient, models.LastDose(doses), nil
}

func (s *Service) GetPatient(ctx context.Context, id models.PatientID) (*models.Patient, error) {
	patient, err := s.store.FindPatientByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "patient ID not found")
	}
	if err != nil {
		return nil, s.storageError(err, "failed to read patient records")
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*models.Patient, error) {
	patients, err := s.store.LoadPatients(ctx)
	if err != nil {
		return nil, s.storageError(err, "failed to read patient records")
	}
	return patients, nil
}

// ListDoses returns a known patient's doses ordered by date.
func (s *Service) ListDoses(ctx context.Context, id models.PatientID) ([]*models.Dose, error) {
	if _, err := s.GetPatient(ctx, id); err != nil {
		return nil, err
	}
	doses, err := s.store.DosesForPatient(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "failed to read vaccination records")
	}
	return models.SortByDate(doses), nil
}

// LastDose returns the dose with the latest date for a known patient.
func (s *Service) LastDose(ctx context.Context, id models.PatientID) (*models.Dose, error) {
	doses, err := s.ListDoses(ctx, id)
	if err != nil {
		return nil, err
	}
	last := models.LastDose(doses)
	if last == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "no doses recorded for patient")
	}
	return last, nil
}

// NextPatientID previews the id the next registration would receive.
func (s *Service) NextPatientID(ctx context.Context) (models.PatientID, error) {
	count, err := s.store.CountPatients(ctx)
	if err != nil {
		return "", s.storageError(err, "failed to read patient records")
	}
	return models.NextPatientID(count), nil
}

func (s *Service) Vaccines() []vaccine.Definition {
	return s.rules.Vaccines.Definitions()
}

func (s *Service) Centres() []string {
	return slices.Clone(s.rules.Centres)
}

func (s *Service) storageError(err error, msg string) error {
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) reject(ctx context.Context, action audit.Action, workflowName, patientID string, err error) {
	code := dErrors.CodeOf(err)
	if s.logger != nil && code == dErrors.CodeInternal {
		s.logger.ErrorContext(ctx, "record workflow failed",
			"workflow", workflowName,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	s.logAudit(ctx, audit.Event{
		Action:    action,
		Outcome:   audit.OutcomeRejected,
		PatientID: patientID,
		Reason:    dErrors.MessageOf(err),
	})
	if s.metrics != nil {
		s.metrics.IncrementRejections(workflowName, string(code))
	}
}

func (s *Service) logAudit(ctx context.Context, event audit.Event) {
	if s.logger != nil {
		s.logger.DebugContext(ctx, string(event.Action),
			"outcome", string(event.Outcome),
			"patient_id", event.PatientID,
			"request_id", requestcontext.RequestID(ctx),
			"log_type", "audit",
		)
	}
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", string(event.Action),
			"error", err.Error(),
		)
	}
}

func (s *Service) observe(workflowName string, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveWorkflowDuration(workflowName, started)
	}
}

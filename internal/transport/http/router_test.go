package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"vaxreg/internal/platform/metrics"
	"vaxreg/internal/platform/middleware"
	"vaxreg/internal/records/handler"
	"vaxreg/internal/records/service"
	"vaxreg/internal/records/store/memory"
	"vaxreg/internal/records/workflow"
	"vaxreg/pkg/testutil"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc, err := service.New(memory.New(), workflow.ReferenceRules(),
		service.WithLogger(logger),
		service.WithMetrics(metrics.New(reg)),
	)
	s.Require().NoError(err)

	s.router = NewRouter(RouterConfig{
		Logger:   logger,
		Gatherer: reg,
		Modules:  []Registrar{handler.New(svc, logger)},
	})
}

func (s *RouterSuite) TestHealth() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rr.Code)
	s.NotEmpty(rr.Header().Get(middleware.RequestIDHeader))

	failing := NewRouter(RouterConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Health: func(context.Context) error { return errors.New("connection refused") },
	})
	rr = testutil.DoRequest(failing, testutil.NewJSONRequest(s.T(), http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusServiceUnavailable, rr.Code)
}

// TestVaccinationFlow drives the AF walkthrough through the full middleware
// chain and checks the counters exposed on /metrics.
func (s *RouterSuite) TestVaccinationFlow() {
	given := func(method, path string, body any) (int, string) {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), method, path, body))
		return rr.Code, rr.Body.String()
	}

	testutil.Given(s.T(), "a patient registered for AF", func(t *testing.T) {
		code, body := given(http.MethodPost, "/patients", map[string]any{
			"name": "Ada", "age": 30, "contact": "555", "centre": "VC1", "vaccine_code": "AF",
		})
		assert.Equal(t, http.StatusCreated, code)
		assert.Contains(t, body, `"patient_id":"P0001"`)
	})

	testutil.When(s.T(), "dose 1 is recorded and dose 2 is attempted too early", func(t *testing.T) {
		code, _ := given(http.MethodPost, "/doses", map[string]string{"patient_id": "P0001", "dose": "D1", "date": "2024-01-01"})
		assert.Equal(t, http.StatusCreated, code)

		code, body := given(http.MethodPost, "/doses", map[string]string{"patient_id": "P0001", "dose": "D2", "date": "2024-01-10"})
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, body, "too early for second dose, wait 14 days")
	})

	testutil.Then(s.T(), "dose 2 after the interval is the last dose", func(t *testing.T) {
		code, _ := given(http.MethodPost, "/doses", map[string]string{"patient_id": "P0001", "dose": "D2", "date": "2024-01-15"})
		assert.Equal(t, http.StatusCreated, code)

		code, body := given(http.MethodGet, "/patients/P0001/doses/last", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"patient_id":"P0001","vaccine_code":"AF","date":"2024-01-15","dose":"D2"}`, body)

		code, body = given(http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "vaxreg_patients_registered_total 1")
		assert.Contains(t, body, `vaxreg_doses_administered_total{dose="D2"} 1`)
		assert.Contains(t, body, `vaxreg_workflow_rejections_total{code="ineligible",workflow="administer_dose"} 1`)
	})
}

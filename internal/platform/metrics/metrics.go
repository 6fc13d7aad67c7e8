package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow names used as the "workflow" label.
const (
	WorkflowRegister   = "register_patient"
	WorkflowAdminister = "administer_dose"
)

// Metrics holds the Prometheus collectors for record workflows.
type Metrics struct {
	PatientsRegistered prometheus.Counter
	DosesAdministered  *prometheus.CounterVec
	Rejections         *prometheus.CounterVec
	WorkflowDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		PatientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaxreg_patients_registered_total",
			Help: "Total number of patients registered",
		}),
		DosesAdministered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vaxreg_doses_administered_total",
			Help: "Total number of doses recorded, by dose label",
		}, []string{"dose"}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vaxreg_workflow_rejections_total",
			Help: "Submissions rejected by a workflow, by error code",
		}, []string{"workflow", "code"}),
		WorkflowDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vaxreg_workflow_duration_seconds",
			Help:    "Time spent handling one workflow submission",
			Buckets: prometheus.DefBuckets,
		}, []string{"workflow"}),
	}
}

func (m *Metrics) IncrementPatientsRegistered() {
	m.PatientsRegistered.Inc()
}

func (m *Metrics) IncrementDosesAdministered(dose string) {
	m.DosesAdministered.WithLabelValues(dose).Inc()
}

func (m *Metrics) IncrementRejections(workflow, code string) {
	m.Rejections.WithLabelValues(workflow, code).Inc()
}

func (m *Metrics) ObserveWorkflowDuration(workflow string, started time.Time) {
	m.WorkflowDuration.WithLabelValues(workflow).Observe(time.Since(started).Seconds())
}

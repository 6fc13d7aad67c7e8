package audit

import "time"

// Event is emitted by the record workflows for every accepted or rejected
// submission.
type Event struct {
	ID        string
	Timestamp time.Time
	Action    Action
	Outcome   Outcome
	PatientID string
	Detail    string
	Reason    string
	RequestID string
}

type Action string

const (
	ActionPatientRegistered Action = "patient_registered"
	ActionDoseAdministered  Action = "dose_administered"
)

type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

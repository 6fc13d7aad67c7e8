package sentinel

import "errors"

// Sentinel errors for storage facts. Record stores return these (optionally
// wrapped) and the workflow service translates them into domain errors.
//
//   - ErrNotFound: no record with the requested identifier
//   - ErrConflict: a record with the same identifier already exists
//   - ErrCorrupt: stored data could not be decoded into a record
//
// Input problems (bad age, unknown vaccine) use pkg/domain-errors directly.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrCorrupt   = errors.New("corrupt record")
)

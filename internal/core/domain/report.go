package domain

import "errors"

var ErrNoSymptomsInRange = errors.New("no data found for the specified user and date range")

// ErrReportGeneration wraps failures of the external text-completion call
// (missing credential, network failure, non-success response). The underlying
// message is surfaced to the caller; there is no retry.
var ErrReportGeneration = errors.New("error generating report")

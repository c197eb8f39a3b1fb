package order

import (
	"fmt"
	"strings"

	"workload/internal/pkg/errs"
)

// Status is the production state of an order.
//
// Any valid status may follow any other.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// InProcess is the default for new orders.
	InProcess

	// Assigned means the order has been handed to a module.
	Assigned

	// Sewing means the order is in the sewing (confección) stage.
	Sewing
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		InProcess: "PROCESO",
		Assigned:  "ASIGNADO",
		Sewing:    "CONFECCION",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no display label
	return map[Status]string{
		InProcess: "PROCESO",
		Assigned:  "ASIGNADO",
		Sewing:    "CONFECCIÓN",
	}
}

// ParseStatus accepts either the storage code or the display label, case-insensitively.
// An empty string yields InProcess.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	if norm == "" {
		return InProcess, nil
	}

	for status, label := range getStatusLabels() {
		if norm == strings.ToUpper(label) || norm == status.Code() {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Code is the accent-free identifier stored in the database.
func (s Status) Code() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// String returns the display label, e.g. "CONFECCIÓN".
func (s Status) String() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "UNKNOWN"
}

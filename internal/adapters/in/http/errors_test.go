package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("op"), http.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("numPersons", -1, 0, 10), http.StatusUnprocessableEntity},
		{"joined validation", errors.Join(errs.NewValueIsInvalidError("op"), errs.NewValueIsRequiredError("campaign")), http.StatusUnprocessableEntity},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"duplicate", errs.NewObjectAlreadyExistsError("op", "1001"), http.StatusConflict},
		{"domain rule", errs.NewDomainRuleViolatedError("negative progress"), http.StatusConflict},
		{"stale version", errs.NewConcurrentUpdateError("order", "x"), http.StatusPreconditionFailed},
		{"bad version token", errs.NewVersionIsInvalidError("version"), http.StatusBadRequest},
		{"wrapped", fmt.Errorf("handle: %w", errs.NewObjectNotFoundError("module", "y")), http.StatusNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

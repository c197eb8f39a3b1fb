package commands

import (
	"fmt"
	"strings"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"
)

func normalizeActor(actor string) (string, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "", errs.NewValueIsRequiredError("actor")
	}
	return actor, nil
}

// validateExpectedVersion accepts 0 as "no token supplied".
func validateExpectedVersion(v int64) error {
	if v < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", v))
	}
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

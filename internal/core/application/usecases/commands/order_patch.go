package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var errNullNotAllowed = errors.New("must not be null")

// DecodeOrderPatch turns a JSON field map into validated order changes. Immutable and unknown
// keys are rejected, and so is any value whose JSON type does not fit the field. All problems
// are reported together.
//
// Example:
//
//	changes, err := DecodeOrderPatch(map[string]json.RawMessage{
//	    "quantityMade": json.RawMessage(`4`),
//	    "moduleId":     json.RawMessage(`null`),
//	})
func DecodeOrderPatch(fields map[string]json.RawMessage) ([]order.Change, error) {
	changes := make([]order.Change, 0, len(fields))
	var problems []error

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		field, err := order.ParseField(key)
		if err != nil {
			problems = append(problems, err)
			continue
		}

		change, err := decodeChange(field, fields[key])
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(key, err))
			continue
		}
		changes = append(changes, change)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return changes, nil
}

//nolint:gocyclo // one case per patchable field
func decodeChange(field order.Field, raw json.RawMessage) (order.Change, error) {
	null := isNull(raw)

	switch field {
	case order.FieldOp:
		v, err := decodeRequired[string](raw, null)
		return order.SetOp(v), err
	case order.FieldPrice:
		v, err := decodeRequired[decimal.Decimal](raw, null)
		return order.SetPrice(v), err
	case order.FieldQuantity:
		v, err := decodeRequired[int](raw, null)
		return order.SetQuantity(v), err
	case order.FieldQuantityMade:
		v, err := decodeRequired[int](raw, null)
		return order.SetQuantityMade(v), err
	case order.FieldSizeBreakdown:
		v, err := decodeOptional[map[string]int](raw, null)
		return order.SetSizeBreakdown(v), err
	case order.FieldSam:
		if null {
			return order.SetSam(nil), nil
		}
		v, err := decode[float64](raw)
		return order.SetSam(&v), err
	case order.FieldStatus:
		v, err := decodeRequired[string](raw, null)
		if err != nil {
			return order.Change{}, err
		}
		status, err := order.ParseStatus(v)
		return order.SetStatus(status), err
	case order.FieldStoppageReason:
		v, err := decodeOptional[string](raw, null)
		if err != nil {
			return order.Change{}, err
		}
		reason, err := order.ParseStoppageReason(v)
		return order.SetStoppageReason(reason), err
	case order.FieldModule:
		if null {
			return order.SetModule(nil), nil
		}
		v, err := decode[string](raw)
		if err != nil {
			return order.Change{}, err
		}
		id, err := kernel.UUIDFromString(v)
		return order.SetModule(&id), err
	case order.FieldReference:
		v, err := decodeOptional[string](raw, null)
		return order.SetReference(v), err
	case order.FieldBrand:
		v, err := decodeOptional[string](raw, null)
		return order.SetBrand(v), err
	case order.FieldCampaign:
		v, err := decodeRequired[string](raw, null)
		return order.SetCampaign(v), err
	case order.FieldType:
		v, err := decodeOptional[string](raw, null)
		return order.SetType(v), err
	case order.FieldDescription:
		v, err := decodeOptional[string](raw, null)
		return order.SetDescription(v), err
	case order.FieldActualDeliveryDate:
		v, err := decodeOptional[string](raw, null)
		return order.SetActualDeliveryDate(v), err
	case order.FieldAssignedDate:
		v, err := decodeRequired[string](raw, null)
		if err != nil {
			return order.Change{}, err
		}
		date, err := ParseDate(v)
		return order.SetAssignedDate(date), err
	case order.FieldPlantEntryDate:
		if null {
			return order.SetPlantEntryDate(nil), nil
		}
		v, err := decode[string](raw)
		if err != nil {
			return order.Change{}, err
		}
		date, err := ParseDate(v)
		return order.SetPlantEntryDate(&date), err
	}

	return order.Change{}, fmt.Errorf("field %q has no decoder", field)
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date", s)
	}
	return t, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return v, fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return v, err
	}
	return v, nil
}

func decodeRequired[T any](raw json.RawMessage, null bool) (T, error) {
	if null {
		var zero T
		return zero, errNullNotAllowed
	}
	return decode[T](raw)
}

// decodeOptional maps null to the zero value.
func decodeOptional[T any](raw json.RawMessage, null bool) (T, error) {
	if null {
		var zero T
		return zero, nil
	}
	return decode[T](raw)
}

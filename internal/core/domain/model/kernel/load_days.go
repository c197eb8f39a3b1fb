package kernel

import (
	"fmt"

	"workload/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LoadDaysScale is the number of fractional digits kept for person-day figures.
const LoadDaysScale = 2

// LoadDays is a non-negative workload in person-days with two fractional digits.
// Values are always rounded half-up (half away from zero for the non-negative range
// this type admits), never with banker's rounding.
//
// The zero value is a valid 0.00 load.
type LoadDays struct {
	value decimal.Decimal
}

// ZeroLoadDays is the load of an order that cannot be computed or has no work left.
func ZeroLoadDays() LoadDays {
	return LoadDays{}
}

// NewLoadDays rounds d to two places and rejects negative results.
func NewLoadDays(d decimal.Decimal) (LoadDays, error) {
	rounded := d.Round(LoadDaysScale)
	if rounded.IsNegative() {
		return LoadDays{}, errs.NewValueIsInvalidErrorWithCause(
			"loadDays",
			fmt.Errorf("%s is negative", rounded.StringFixed(LoadDaysScale)),
		)
	}
	return LoadDays{value: rounded}, nil
}

// MustLoadDays parses a literal such as "3.50". It panics on malformed input and is meant
// for constants and tests.
func MustLoadDays(s string) LoadDays {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	l, err := NewLoadDays(d)
	if err != nil {
		panic(err)
	}
	return l
}

// Decimal exposes the value for persistence and arithmetic in aggregators.
func (l LoadDays) Decimal() decimal.Decimal {
	return l.value
}

func (l LoadDays) IsZero() bool {
	return l.value.IsZero()
}

func (l LoadDays) Add(other LoadDays) LoadDays {
	return LoadDays{value: l.value.Add(other.value)}
}

// Sub subtracts other, flooring at zero.
func (l LoadDays) Sub(other LoadDays) LoadDays {
	res := l.value.Sub(other.value)
	if res.IsNegative() {
		return LoadDays{}
	}
	return LoadDays{value: res}
}

func (l LoadDays) IsEqual(other LoadDays) bool {
	return l.value.Equal(other.value)
}

// String renders the value with exactly two fractional digits, e.g. "0.75".
func (l LoadDays) String() string {
	return l.value.StringFixed(LoadDaysScale)
}

package kernel_test

import (
	"testing"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadDays(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "keeps two digits", in: "0.75", want: "0.75"},
		{name: "rounds half up", in: "1.125", want: "1.13"},
		{name: "rounds half up on even neighbour", in: "0.745", want: "0.75"},
		{name: "rounds down below half", in: "2.4449", want: "2.44"},
		{name: "pads integers", in: "3", want: "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := kernel.NewLoadDays(decimal.RequireFromString(tt.in))

			require.NoError(t, err)
			assert.Equal(t, tt.want, l.String())
		})
	}

	t.Run("rejects negatives", func(t *testing.T) {
		_, err := kernel.NewLoadDays(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLoadDays_Arithmetic(t *testing.T) {
	a := kernel.MustLoadDays("1.00")
	b := kernel.MustLoadDays("2.50")

	assert.Equal(t, "3.50", a.Add(b).String())
	assert.Equal(t, "1.50", b.Sub(a).String())
	assert.True(t, a.Sub(b).IsZero())
	assert.True(t, kernel.ZeroLoadDays().IsEqual(kernel.MustLoadDays("0")))
}

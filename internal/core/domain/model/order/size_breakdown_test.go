package order_test

import (
	"math"
	"testing"

	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		breakdown map[string]int
		want      int
		wantErr   error
	}{
		{name: "derives quantity from sizes", quantity: 0, breakdown: map[string]int{"S": 5, "M": 5}, want: 10},
		{name: "accepts matching quantity", quantity: 7, breakdown: map[string]int{"S": 3, "M": 4}, want: 7},
		{name: "clamps negative counts", quantity: 0, breakdown: map[string]int{"S": -2, "M": 2}, want: 2},
		{name: "requires something", quantity: 0, breakdown: nil, wantErr: order.ErrQuantityOrSizeBreakdownRequired},
		{name: "requires sizes with quantity", quantity: 4, breakdown: map[string]int{"S": 0}, wantErr: order.ErrSizeBreakdownRequired},
		{name: "rejects mismatch", quantity: 4, breakdown: map[string]int{"S": 5}, wantErr: errs.ErrValueIsInvalid},
		{name: "rejects negative quantity", quantity: -1, breakdown: map[string]int{"S": 5}, wantErr: errs.ErrValueIsInvalid},
		{
			name:      "rejects sizes whose sum overflows",
			quantity:  0,
			breakdown: map[string]int{"A": 1 << 62, "B": 1 << 62, "C": 1 << 62, "D": 1 << 62, "E": 5},
			wantErr:   errs.ErrValueIsOutOfRange,
		},
		{
			name:      "rejects overflowing sizes against a quantity",
			quantity:  5,
			breakdown: map[string]int{"S": math.MaxInt, "M": 5},
			wantErr:   errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, breakdown, err := order.ReconcileQuantity(tt.quantity, tt.breakdown)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, breakdown.Sum())
		})
	}
}

func TestReconcileQuantity_IsIdempotent(t *testing.T) {
	q1, b1, err := order.ReconcileQuantity(0, map[string]int{"S": 5, "M": -1, "L": 5})
	require.NoError(t, err)

	q2, b2, err := order.ReconcileQuantity(q1, b1)
	require.NoError(t, err)

	assert.Equal(t, q1, q2)
	assert.True(t, b1.IsEqual(b2))
}

func TestReconcileQuantity_MismatchMessage(t *testing.T) {
	_, _, err := order.ReconcileQuantity(12, map[string]int{"S": 5, "M": 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sizeBreakdown sum does not match quantity")
	assert.Contains(t, err.Error(), "sum of sizes is 10, quantity is 12")
}

func TestSizeBreakdown(t *testing.T) {
	b := order.NormalizeSizeBreakdown(map[string]int{"M": 2, "L": -4, "S": 1})

	assert.Equal(t, 3, b.Sum())
	assert.Equal(t, []string{"L", "M", "S"}, b.Sizes())

	clone := b.Clone()
	clone["M"] = 9
	assert.Equal(t, 2, b["M"])
	assert.False(t, b.IsEqual(clone))

	var empty order.SizeBreakdown
	assert.NotNil(t, empty.Clone())
	assert.Equal(t, 0, empty.Sum())

	huge := order.SizeBreakdown{"S": math.MaxInt, "M": 1}
	assert.Equal(t, math.MaxInt, huge.Sum())
}

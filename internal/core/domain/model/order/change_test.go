package order_test

import (
	"testing"

	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Run("should resolve patchable keys", func(t *testing.T) {
		for _, key := range []string{"op", "quantity", "sizeBreakdown", "quantityMade", "moduleId", "plantEntryDate"} {
			f, err := order.ParseField(key)

			require.NoError(t, err, key)
			assert.Equal(t, order.Field(key), f)
		}
	})

	t.Run("should reject immutable keys", func(t *testing.T) {
		for _, key := range []string{"id", "version", "missing", "samTotal", "loadDays", "createdBy"} {
			_, err := order.ParseField(key)

			require.ErrorIs(t, err, errs.ErrValidation, key)
			assert.Contains(t, err.Error(), order.ErrFieldIsImmutable.Error())
		}
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := order.ParseField("colour")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "unknown field")
	})
}

func TestChange_Field(t *testing.T) {
	assert.Equal(t, order.FieldQuantity, order.SetQuantity(1).Field())
	assert.Equal(t, order.FieldModule, order.SetModule(nil).Field())
	assert.Equal(t, order.FieldSam, order.SetSam(nil).Field())
}

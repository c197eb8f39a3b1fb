package commands_test

import (
	"encoding/json"
	"testing"
	"time"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(fields map[string]string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		out[k] = json.RawMessage(v)
	}
	return out
}

func TestDecodeOrderPatch(t *testing.T) {
	t.Run("should decode known fields in key order", func(t *testing.T) {
		changes, err := commands.DecodeOrderPatch(raw(map[string]string{
			"quantityMade":   `4`,
			"brand":          `"Acme"`,
			"plantEntryDate": `"2024-03-10"`,
			"price":          `"19.90"`,
		}))
		require.NoError(t, err)

		fields := make([]order.Field, 0, len(changes))
		for _, c := range changes {
			fields = append(fields, c.Field())
		}
		assert.Equal(t, []order.Field{
			order.FieldBrand, order.FieldPlantEntryDate, order.FieldPrice, order.FieldQuantityMade,
		}, fields)
	})

	t.Run("should reject immutable and unknown keys together", func(t *testing.T) {
		_, err := commands.DecodeOrderPatch(raw(map[string]string{
			"loadDays": `1`,
			"color":    `"red"`,
		}))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), order.ErrFieldIsImmutable.Error())
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("should reject a value of the wrong JSON type", func(t *testing.T) {
		_, err := commands.DecodeOrderPatch(raw(map[string]string{"quantity": `"ten"`}))
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should reject null for required fields", func(t *testing.T) {
		_, err := commands.DecodeOrderPatch(raw(map[string]string{"op": `null`}))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := commands.DecodeOrderPatch(raw(map[string]string{"status": `"LOST"`}))
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDecodeOrderPatch_NullClearsOptionalFields(t *testing.T) {
	moduleID := kernel.NewUUID()
	o := storedOrder(t, &moduleID, "0.75")

	changes, err := commands.DecodeOrderPatch(raw(map[string]string{
		"moduleId":       `null`,
		"sam":            `null`,
		"plantEntryDate": `null`,
		"stoppageReason": `null`,
	}))
	require.NoError(t, err)
	require.NoError(t, o.Apply("planner", changes...))

	assert.Nil(t, o.ModuleID())
	assert.Nil(t, o.Sam())
	assert.Nil(t, o.SamTotal())
	assert.Nil(t, o.Details().PlantEntryDate)
	assert.Equal(t, order.NoStoppage, o.StoppageReason())
}

func TestDecodeOrderPatch_AppliesValues(t *testing.T) {
	o := storedOrder(t, nil, "0.00")
	moduleID := kernel.NewUUID()

	changes, err := commands.DecodeOrderPatch(raw(map[string]string{
		"moduleId":     `"` + moduleID.String() + `"`,
		"sam":          `30`,
		"quantityMade": `4`,
		"assignedDate": `"2024-02-01T08:30:00Z"`,
	}))
	require.NoError(t, err)
	require.NoError(t, o.Apply("planner", changes...))

	require.NotNil(t, o.ModuleID())
	assert.Equal(t, moduleID, *o.ModuleID())
	assert.Equal(t, 4, o.QuantityMade())
	require.NotNil(t, o.SamTotal())
	assert.Equal(t, 180, *o.SamTotal())
	assert.Equal(t, 2024, o.Details().AssignedDate.Year())
}

func TestParseDate(t *testing.T) {
	d, err := commands.ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = commands.ParseDate("10/03/2024")
	require.Error(t, err)
}

func TestPatchOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	m := storedModule(t, 2, "0.75")
	moduleID := m.ID()
	o := storedOrder(t, &moduleID, "0.75")

	cmd, err := commands.NewPatchOrderCommand(o.ID(), 3, "planner", raw(map[string]string{"moduleId": `null`}))
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.modules.On("Get", ctx, moduleID).Return(m, nil).Once()
	f.orders.On("Update", ctx, hasLoad("0.00")).Return(nil).Once()
	f.modules.On("Update", ctx, hasAggregate(m, "0.00")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewPatchOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, o.ModuleID())
	f.assertExpectations(t)
}

func TestNewPatchOrderCommand_InvalidFields(t *testing.T) {
	_, err := commands.NewPatchOrderCommand(kernel.NewUUID(), 0, "planner", raw(map[string]string{"version": `4`}))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

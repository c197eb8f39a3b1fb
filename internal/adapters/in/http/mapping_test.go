package http

import (
	"testing"
	"time"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/generated/servers"
	"workload/internal/pkg/errs"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToOrderChanges_OnlyPresentFields(t *testing.T) {
	changes, err := toOrderChanges(servers.OrderUpdate{
		Price:    ptr("19.90"),
		Quantity: ptr(12),
		Status:   ptr("confección"),
	})
	require.NoError(t, err)

	fields := make([]order.Field, len(changes))
	for i, c := range changes {
		fields[i] = c.Field()
	}
	assert.Equal(t, []order.Field{order.FieldPrice, order.FieldQuantity, order.FieldStatus}, fields)
}

func TestToOrderChanges_EmptyBody(t *testing.T) {
	changes, err := toOrderChanges(servers.OrderUpdate{})
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestToOrderChanges_ReportsEveryBadField(t *testing.T) {
	_, err := toOrderChanges(servers.OrderUpdate{
		Price:          ptr("abc"),
		Status:         ptr("SHIPPED"),
		StoppageReason: ptr("LUNCH"),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "price")
}

func TestToCreateOrderCommand(t *testing.T) {
	moduleID := openapi_types.UUID(uuid.New())
	body := servers.NewOrder{
		Op:            "1001",
		Price:         "12.50",
		Campaign:      "202401",
		AssignedDate:  openapi_types.Date{Time: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		SizeBreakdown: ptr(map[string]*int{"S": ptr(5), "M": ptr(5)}),
		ModuleId:      &moduleID,
	}

	cmd, err := toCreateOrderCommand(kernel.NewUUID(), body, "planner")
	require.NoError(t, err)

	assert.Equal(t, "1001", cmd.Details().Op)
	assert.True(t, decimal.RequireFromString("12.50").Equal(cmd.Details().Price))
	assert.Equal(t, order.InProcess, cmd.Details().Status)
	require.NotNil(t, cmd.ModuleID())
	assert.Equal(t, moduleID.String(), cmd.ModuleID().String())
	assert.Equal(t, "planner", cmd.Actor())
}

func TestToCreateOrderCommand_NormalizesSizeCounts(t *testing.T) {
	body := servers.NewOrder{
		Op:            "1001",
		Price:         "12.50",
		Campaign:      "202401",
		AssignedDate:  openapi_types.Date{Time: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		SizeBreakdown: ptr(map[string]*int{"S": ptr(-1), "M": ptr(5), "L": nil}),
	}

	cmd, err := toCreateOrderCommand(kernel.NewUUID(), body, "planner")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"S": -1, "M": 5, "L": 0}, cmd.SizeBreakdown())

	o, err := order.NewOrder(cmd.OrderID(), cmd.Details(), cmd.Quantity(), cmd.SizeBreakdown(), cmd.Actor())
	require.NoError(t, err)
	assert.Equal(t, 5, o.Quantity())
	assert.Equal(t, order.SizeBreakdown{"S": 0, "M": 5, "L": 0}, o.SizeBreakdown())
}

func TestToOrderChanges_NullSizeCount(t *testing.T) {
	changes, err := toOrderChanges(servers.OrderUpdate{
		SizeBreakdown: ptr(map[string]*int{"S": nil, "M": ptr(4)}),
	})

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, order.FieldSizeBreakdown, changes[0].Field())
}

func TestToCreateOrderCommand_InvalidPrice(t *testing.T) {
	_, err := toCreateOrderCommand(kernel.NewUUID(), servers.NewOrder{
		Op:           "1001",
		Price:        "twelve",
		Campaign:     "202401",
		AssignedDate: openapi_types.Date{Time: time.Now()},
	}, "planner")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestToAPIOrder(t *testing.T) {
	moduleID := kernel.NewUUID()
	sam := 60.0
	view := queries.OrderView{
		ID:             kernel.NewUUID(),
		Op:             "1001",
		Price:          decimal.RequireFromString("12.5"),
		TotalPrice:     decimal.RequireFromString("125"),
		Quantity:       10,
		SizeBreakdown:  map[string]int{"S": 5, "M": 5},
		Missing:        10,
		Sam:            &sam,
		LoadDays:       kernel.MustLoadDays("1.5"),
		Status:         order.Sewing,
		StoppageReason: order.NoStoppage,
		Campaign:       "202401",
		AssignedDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ModuleID:       &moduleID,
		ModuleName:     "Linea A",
		Version:        4,
	}

	got := toAPIOrder(view)

	assert.Equal(t, "1.50", got.LoadDays)
	assert.Equal(t, "CONFECCIÓN", got.Status)
	assert.Nil(t, got.StoppageReason)
	assert.Nil(t, got.Reference)
	require.NotNil(t, got.ModuleName)
	assert.Equal(t, "Linea A", *got.ModuleName)
	require.NotNil(t, got.ModuleId)
	assert.Equal(t, moduleID.String(), got.ModuleId.String())
	assert.Equal(t, int64(4), got.Version)
}

func TestToAPIReconcileReport(t *testing.T) {
	id := kernel.NewUUID()
	report := toAPIReconcileReport(commands.ReconcileModuleLoadsResult{
		Checked: 3,
		Drifts: []commands.ModuleLoadDrift{{
			ModuleID: id, Name: "Linea A",
			Stored: kernel.MustLoadDays("2.00"), Actual: kernel.MustLoadDays("1.50"),
		}},
	})

	assert.Equal(t, 3, report.Checked)
	require.Len(t, report.Drifts, 1)
	assert.Equal(t, "2.00", report.Drifts[0].Stored)
	assert.Equal(t, "1.50", report.Drifts[0].Actual)
}

func TestActorOf(t *testing.T) {
	assert.Equal(t, "system", actorOf(nil))
	assert.Equal(t, "system", actorOf(ptr("")))
	assert.Equal(t, "ana", actorOf(ptr("ana")))
}

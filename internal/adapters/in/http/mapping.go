package http

import (
	"errors"
	"time"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/generated/servers"
	"workload/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kid, err := toKernelUUID(*id)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("moduleId", err)
	}
	return &kid, nil
}

func toOptionalAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return price, nil
}

func toDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func fromDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// toSizeCounts reads null counts as 0. Negative counts pass through for the domain to clamp.
func toSizeCounts(in *map[string]*int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(*in))
	for size, units := range *in {
		out[size] = deref(units)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// toCreateOrderCommand validates every body field and reports all problems at once.
func toCreateOrderCommand(orderID kernel.UUID, body servers.NewOrder, actor string) (commands.CreateOrderCommand, error) {
	price, priceErr := parsePrice(body.Price)
	status, statusErr := order.ParseStatus(deref(body.Status))
	reason, reasonErr := order.ParseStoppageReason(deref(body.StoppageReason))
	moduleID, moduleErr := toOptionalKernelUUID(body.ModuleId)
	if err := errors.Join(priceErr, statusErr, reasonErr, moduleErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	details := order.Details{
		Op:                 body.Op,
		Price:              price,
		AssignedDate:       body.AssignedDate.Time,
		PlantEntryDate:     toDate(body.PlantEntryDate),
		Reference:          deref(body.Reference),
		Brand:              deref(body.Brand),
		Campaign:           body.Campaign,
		Type:               deref(body.Type),
		Description:        deref(body.Description),
		ActualDeliveryDate: deref(body.ActualDeliveryDate),
		Sam:                body.Sam,
		Status:             status,
		StoppageReason:     reason,
	}

	return commands.NewCreateOrderCommand(
		orderID, details, deref(body.Quantity), toSizeCounts(body.SizeBreakdown), moduleID, actor,
	)
}

// toOrderChanges turns the fields present in a PUT body into order changes.
func toOrderChanges(body servers.OrderUpdate) ([]order.Change, error) {
	var (
		changes  []order.Change
		problems []error
	)
	add := func(c order.Change) { changes = append(changes, c) }

	if body.Op != nil {
		add(order.SetOp(*body.Op))
	}
	if body.Price != nil {
		if price, err := parsePrice(*body.Price); err != nil {
			problems = append(problems, err)
		} else {
			add(order.SetPrice(price))
		}
	}
	if body.Quantity != nil {
		add(order.SetQuantity(*body.Quantity))
	}
	if body.SizeBreakdown != nil {
		add(order.SetSizeBreakdown(toSizeCounts(body.SizeBreakdown)))
	}
	if body.QuantityMade != nil {
		add(order.SetQuantityMade(*body.QuantityMade))
	}
	if body.Sam != nil {
		add(order.SetSam(body.Sam))
	}
	if body.Status != nil {
		if status, err := order.ParseStatus(*body.Status); err != nil {
			problems = append(problems, err)
		} else {
			add(order.SetStatus(status))
		}
	}
	if body.StoppageReason != nil {
		if reason, err := order.ParseStoppageReason(*body.StoppageReason); err != nil {
			problems = append(problems, err)
		} else {
			add(order.SetStoppageReason(reason))
		}
	}
	if body.ModuleId != nil {
		if moduleID, err := toOptionalKernelUUID(body.ModuleId); err != nil {
			problems = append(problems, err)
		} else {
			add(order.SetModule(moduleID))
		}
	}
	if body.Reference != nil {
		add(order.SetReference(*body.Reference))
	}
	if body.Brand != nil {
		add(order.SetBrand(*body.Brand))
	}
	if body.Campaign != nil {
		add(order.SetCampaign(*body.Campaign))
	}
	if body.Type != nil {
		add(order.SetType(*body.Type))
	}
	if body.Description != nil {
		add(order.SetDescription(*body.Description))
	}
	if body.AssignedDate != nil {
		add(order.SetAssignedDate(body.AssignedDate.Time))
	}
	if body.PlantEntryDate != nil {
		add(order.SetPlantEntryDate(toDate(body.PlantEntryDate)))
	}
	if body.ActualDeliveryDate != nil {
		add(order.SetActualDeliveryDate(*body.ActualDeliveryDate))
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return changes, nil
}

func toAPIOrder(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:                 v.ID.Bytes(),
		Op:                 v.Op,
		Price:              v.Price.String(),
		TotalPrice:         v.TotalPrice.String(),
		Quantity:           v.Quantity,
		SizeBreakdown:      v.SizeBreakdown,
		QuantityMade:       v.QuantityMade,
		Missing:            v.Missing,
		DeliveryPercentage: v.DeliveryPercentage,
		Sam:                v.Sam,
		SamTotal:           v.SamTotal,
		LoadDays:           v.LoadDays.String(),
		Status:             v.Status.String(),
		StoppageReason:     optional(v.StoppageReason.String()),
		Reference:          optional(v.Reference),
		Brand:              optional(v.Brand),
		Campaign:           v.Campaign,
		Type:               optional(v.Type),
		Description:        optional(v.Description),
		AssignedDate:       openapi_types.Date{Time: v.AssignedDate},
		PlantEntryDate:     fromDate(v.PlantEntryDate),
		ActualDeliveryDate: optional(v.ActualDeliveryDate),
		CycleDays:          v.CycleDays,
		ModuleId:           toOptionalAPIUUID(v.ModuleID),
		ModuleName:         optional(v.ModuleName),
		CreatedBy:          optional(v.CreatedBy),
		UpdatedBy:          optional(v.UpdatedBy),
		Version:            v.Version,
	}
}

func toAPIOrders(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, len(views))
	for i, v := range views {
		out[i] = toAPIOrder(v)
	}
	return out
}

func toAPIModule(v queries.ModuleView) servers.Module {
	return servers.Module{
		Id:                v.ID.Bytes(),
		Name:              v.Name,
		Description:       optional(v.Description),
		NumPersons:        v.NumPersons,
		AggregateLoadDays: v.AggregateLoadDays.String(),
		OrderCount:        v.OrderCount,
		Version:           v.Version,
	}
}

func toAPIModules(views []queries.ModuleView) []servers.Module {
	out := make([]servers.Module, len(views))
	for i, v := range views {
		out[i] = toAPIModule(v)
	}
	return out
}

func toAPIReconcileReport(r commands.ReconcileModuleLoadsResult) servers.ReconcileReport {
	drifts := make([]servers.ModuleLoadDrift, len(r.Drifts))
	for i, d := range r.Drifts {
		drifts[i] = servers.ModuleLoadDrift{
			ModuleId:      d.ModuleID.Bytes(),
			Name:          d.Name,
			Stored:        d.Stored.String(),
			Actual:        d.Actual.String(),
			OrdersUpdated: d.OrdersUpdated,
		}
	}
	return servers.ReconcileReport{Checked: r.Checked, Drifts: drifts}
}

package postgres

import (
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"
)

func aggregateType(aggregate any) string {
	switch aggregate.(type) {
	case *order.Order:
		return "order"
	case *module.Module:
		return "module"
	default:
		return "unknown"
	}
}

// Package kernel provides value objects shared by the order and module aggregates:
// UUID identifiers and LoadDays, the person-day workload figure built on shopspring/decimal.
package kernel

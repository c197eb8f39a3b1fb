// Package module models production lines (cells): their headcount and the aggregate workload,
// in person-days, of the orders assigned to them.
package module

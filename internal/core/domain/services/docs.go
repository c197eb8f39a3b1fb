// Package services provides domain services that span the order and module aggregates:
//   - LoadCalculator: standard minutes and headcount to person-days
//   - ModuleLoadAggregator: keeps a module's aggregate load equal to the sum of its orders' loads
package services

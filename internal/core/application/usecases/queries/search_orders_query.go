package queries

import (
	"errors"
	"strings"

	"workload/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery matches text case-insensitively anywhere in op, reference, campaign or
// brand. Blank text matches every order.
type SearchOrdersQuery struct {
	text string

	guard guard.ConstructorGuard
}

func NewSearchOrdersQuery(text string) SearchOrdersQuery {
	return SearchOrdersQuery{text: strings.TrimSpace(text), guard: guard.NewConstructorGuard()}
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Text() string { return q.text }

package queries

import (
	"errors"
	"strings"

	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrFindStoreByNameQueryIsNotConstructed = errors.New(
	"FindStoreByNameQuery must be created via NewFindStoreByNameQuery constructor",
)

// FindStoreByNameQuery retrieves a single store by its exact name.
// The match is case-sensitive, consistent with the unique index on names.
type FindStoreByNameQuery struct {
	name string

	guard guard.ConstructorGuard
}

// NewFindStoreByNameQuery validates the name parameter and builds the query.
func NewFindStoreByNameQuery(name string) (FindStoreByNameQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FindStoreByNameQuery{}, errs.NewValueIsRequiredError("name")
	}

	return FindStoreByNameQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindStoreByNameQuery) Validate() error {
	return q.guard.Validate(ErrFindStoreByNameQueryIsNotConstructed)
}

// Name returns the exact store name being searched.
func (q FindStoreByNameQuery) Name() string {
	return q.name
}

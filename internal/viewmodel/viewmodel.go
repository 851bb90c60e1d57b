// Package viewmodel is the boundary between the screen and the repository.
package viewmodel

import (
	"context"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/repository"
)

// Source produces result streams for cuaca operations.
type Source interface {
	FetchAll(ctx context.Context) repository.Stream
	DeleteByID(ctx context.Context, id string) repository.Stream
}

// CuacaViewModel forwards screen requests to the repository unchanged.
type CuacaViewModel struct {
	repo Source
}

// New creates a CuacaViewModel over repo.
func New(repo Source) *CuacaViewModel {
	return &CuacaViewModel{repo: repo}
}

// FetchAll returns the repository's list stream.
func (vm *CuacaViewModel) FetchAll(ctx context.Context) repository.Stream {
	return vm.repo.FetchAll(ctx)
}

// DeleteByID returns the repository's delete stream for id.
func (vm *CuacaViewModel) DeleteByID(ctx context.Context, id string) repository.Stream {
	return vm.repo.DeleteByID(ctx, id)
}

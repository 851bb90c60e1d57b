package viewmodel

import (
	"context"
	"testing"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/repository"
	"github.com/stretchr/testify/assert"
)

type recordingSource struct {
	fetches   int
	deleteIDs []string
	stream    repository.Stream
}

func (r *recordingSource) FetchAll(_ context.Context) repository.Stream {
	r.fetches++
	return r.stream
}

func (r *recordingSource) DeleteByID(_ context.Context, id string) repository.Stream {
	r.deleteIDs = append(r.deleteIDs, id)
	return r.stream
}

func TestCuacaViewModel_Delegates(t *testing.T) {
	ch := make(chan domain.Result[domain.CuacaResponse])
	src := &recordingSource{stream: ch}
	vm := New(src)

	assert.Equal(t, repository.Stream(ch), vm.FetchAll(context.Background()))
	assert.Equal(t, repository.Stream(ch), vm.DeleteByID(context.Background(), "7"))

	assert.Equal(t, 1, src.fetches)
	assert.Equal(t, []string{"7"}, src.deleteIDs)
}

package screen

import "github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"

// Refresh trigger sources, also used as metric labels.
const (
	sourceMount     = "mount"
	sourceManual    = "manual"
	sourceScheduled = "scheduled"
	sourceDelete    = "delete"
)

type event interface{}

type refreshEvent struct {
	source string
}

type longPressEvent struct {
	item domain.DataItem
}

type confirmEvent struct{}

type cancelEvent struct{}

type fetchResultEvent struct {
	gen    uint64
	result domain.Result[domain.CuacaResponse]
}

type deleteResultEvent struct {
	result domain.Result[domain.CuacaResponse]
}

type expireEvent struct {
	seq uint64
}

package domain

import "context"

// CuacaAPI is the remote store of weather reports.
type CuacaAPI interface {
	// ListAll fetches every record in server order.
	ListAll(ctx context.Context) (CuacaResponse, error)

	// DeleteByID removes one record and returns the remaining records.
	DeleteByID(ctx context.Context, id string) (CuacaResponse, error)
}

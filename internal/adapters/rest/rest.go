// Package rest contains the REST-backed implementations of the domain
// service ports. Each service composes the shared apiclient against fixed
// URL templates and translates wire shapes into domain objects; errors from
// the client pass through unchanged.
package rest

import (
	"context"
	"encoding/json"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// listItems fetches a paginated list endpoint and unwraps the
// {items,total,page,limit} envelope into a plain slice. A malformed body or
// an absent items array yields an empty slice, never an error.
func listItems[T any](ctx context.Context, c *apiclient.Client, endpoint string, params apiclient.Params) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, endpoint+params.Encode(), &raw); err != nil {
		return nil, err
	}
	var envelope dto.Paginated[T]
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Items == nil {
		return []T{}, nil
	}
	return envelope.Items, nil
}

// listArray fetches an endpoint that returns a bare JSON array (the
// by-parent lookups). Anything that is not an array yields an empty slice.
func listArray[T any](ctx context.Context, c *apiclient.Client, endpoint string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}, nil
	}
	return items, nil
}

func listQuery(p dto.ListParams) apiclient.Params {
	return apiclient.Params{}.Merge(p.Query())
}

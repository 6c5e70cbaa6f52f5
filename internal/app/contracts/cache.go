package contracts

import "context"

// EntityCache holds API responses keyed by entity type and id, plus one list entry per type.
// A miss is reported with found=false and no error.
type EntityCache interface {
	GetList(ctx context.Context, resource string, out interface{}) (found bool, err error)
	SetList(ctx context.Context, resource string, value interface{}) error
	GetEntity(ctx context.Context, resource, id string, out interface{}) (found bool, err error)
	SetEntity(ctx context.Context, resource, id string, value interface{}) error
	Invalidate(ctx context.Context, resource, id string) error
}

package flat

import (
	"context"

	"github.com/mwantia/flatvfs/data"
)

// Index binds a Lister to the flat algorithms so backends can embed the
// structural half of the filesystem contract.
type Index struct {
	list Lister
}

func NewIndex(list Lister) *Index {
	return &Index{
		list: list,
	}
}

// List returns the current snapshot of the backing store.
func (x *Index) List(ctx context.Context) ([]string, error) {
	return x.list(ctx)
}

func (x *Index) FileExists(ctx context.Context, path string) (bool, error) {
	return FileExists(ctx, x.list, path)
}

func (x *Index) DirectoryExists(ctx context.Context, path string) (bool, error) {
	return DirectoryExists(ctx, x.list, path)
}

func (x *Index) EnumerateItems(ctx context.Context, path string, option data.SearchOption, match data.Predicate) ([]data.Item, error) {
	return EnumerateItems(ctx, x.list, path, option, match)
}

func (x *Index) EnumeratePaths(ctx context.Context, path, pattern string, option data.SearchOption, target data.SearchTarget) ([]string, error) {
	return EnumeratePaths(ctx, x.list, path, pattern, option, target)
}

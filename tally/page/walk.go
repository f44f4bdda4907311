package page

import (
	"context"
	"fmt"

	"github.com/viant/tally-mcp/tally/model"
)

// Fetch returns one page of items starting after afterCursor ("" for the first page).
type Fetch[T any] func(ctx context.Context, afterCursor string) ([]T, model.PageInfo, error)

// Walk follows lastCursor forward until it is absent, a page comes back
// empty, or the upstream repeats a cursor. Pages are requested sequentially.
func Walk[T any](ctx context.Context, fetch Fetch[T], visit func(items []T) error) error {
	seen := map[string]struct{}{}
	cursor := ""
	for {
		items, info, err := fetch(ctx, cursor)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			if err := visit(items); err != nil {
				return err
			}
		}
		next, ok := info.Next()
		if !ok || len(items) == 0 {
			return nil
		}
		if _, dup := seen[next]; dup || next == cursor {
			return fmt.Errorf("pagination cursor %q repeated", next)
		}
		seen[next] = struct{}{}
		cursor = next
	}
}

// Collect walks every page and returns the concatenated items.
func Collect[T any](ctx context.Context, fetch Fetch[T]) ([]T, error) {
	var ret []T
	err := Walk(ctx, fetch, func(items []T) error {
		ret = append(ret, items...)
		return nil
	})
	return ret, err
}

package subscriber

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache"
)

// invalidateToolCaches drops every cached view a tool can appear in.
func invalidateToolCaches(ctx context.Context, c cache.Client, categoryID string) error {
	if m := c.GetTTLMap(cache.ToolsTTLName); m != nil {
		m.Clear()
	}
	if m := c.GetTTLMap(cache.CategoriesTTLName); m != nil {
		m.Clear()
	}

	keys := []string{cache.ToolsSnapshotKey}
	if categoryID != "" {
		keys = append(keys, fmt.Sprintf(cache.CategoryToolsKeyPattern, categoryID))
	}
	if err := c.Delete(ctx, keys...); err != nil {
		return err
	}
	return c.DeleteByPattern(ctx, cache.TrendingKeysMatch)
}

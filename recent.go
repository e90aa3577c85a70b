package codeforces

//
// recent.go - the recentActions operation.
//

import (
	"context"

	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/model"
)

// RecentActions invokes recentActions: it returns the given number of
// recent actions, at most 100.
func (c *Client) RecentActions(ctx context.Context, maxCount int64) ([]model.RecentAction, error) {
	query := apiurl.NewQuery()
	query.Int("maxCount", maxCount)
	return call[model.RecentAction](ctx, c, apiurl.MethodRecentActions, query)
}

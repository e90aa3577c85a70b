package codeforces

//
// blogentry.go - the blogEntry.* operations.
//

import (
	"context"

	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/model"
)

// BlogEntryComments invokes blogEntry.comments: it returns the
// comments of the blog entry with the given id.
func (c *Client) BlogEntryComments(ctx context.Context, blogEntryID int64) ([]model.Comment, error) {
	query := apiurl.NewQuery()
	query.Int("blogEntryId", blogEntryID)
	return call[model.Comment](ctx, c, apiurl.MethodBlogEntryComments, query)
}

// BlogEntryView invokes blogEntry.view: it returns the blog entry with
// the given id in full form.
func (c *Client) BlogEntryView(ctx context.Context, blogEntryID int64) ([]model.BlogEntry, error) {
	query := apiurl.NewQuery()
	query.Int("blogEntryId", blogEntryID)
	return call[model.BlogEntry](ctx, c, apiurl.MethodBlogEntryView, query)
}

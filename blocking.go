package codeforces

//
// blocking.go - the blocking client variant.
//

import (
	"context"

	"github.com/contestwire/codeforces/model"
)

// BlockingClient is the blocking variant of [Client]: each call fully
// occupies the calling goroutine until the response arrives and cannot
// be cancelled. It shares all of the endpoint-building, signing, and
// decoding logic with [Client].
//
// The zero value is invalid; construct using [NewBlockingClient].
type BlockingClient struct {
	client *Client
}

// NewBlockingClient constructs a [*BlockingClient] with the given config.
func NewBlockingClient(config *Config) *BlockingClient {
	return &BlockingClient{client: NewClient(config)}
}

// Close releases the resources owned by the client. Calls made after
// Close fail with [ErrClientClosed]. Close is idempotent.
func (c *BlockingClient) Close() error {
	return c.client.Close()
}

// BlogEntryComments behaves like [Client.BlogEntryComments].
func (c *BlockingClient) BlogEntryComments(blogEntryID int64) ([]model.Comment, error) {
	return c.client.BlogEntryComments(context.Background(), blogEntryID)
}

// BlogEntryView behaves like [Client.BlogEntryView].
func (c *BlockingClient) BlogEntryView(blogEntryID int64) ([]model.BlogEntry, error) {
	return c.client.BlogEntryView(context.Background(), blogEntryID)
}

// ContestHacks behaves like [Client.ContestHacks].
func (c *BlockingClient) ContestHacks(req *ContestHacksRequest) ([]model.Hack, error) {
	return c.client.ContestHacks(context.Background(), req)
}

// ContestList behaves like [Client.ContestList].
func (c *BlockingClient) ContestList(req *ContestListRequest) ([]model.Contest, error) {
	return c.client.ContestList(context.Background(), req)
}

// ContestRatingChanges behaves like [Client.ContestRatingChanges].
func (c *BlockingClient) ContestRatingChanges(contestID int64) ([]model.RatingChange, error) {
	return c.client.ContestRatingChanges(context.Background(), contestID)
}

// ContestStandings behaves like [Client.ContestStandings].
func (c *BlockingClient) ContestStandings(req *ContestStandingsRequest) ([]model.Standings, error) {
	return c.client.ContestStandings(context.Background(), req)
}

// ContestStatus behaves like [Client.ContestStatus].
func (c *BlockingClient) ContestStatus(req *ContestStatusRequest) ([]model.Submission, error) {
	return c.client.ContestStatus(context.Background(), req)
}

// ProblemsetProblems behaves like [Client.ProblemsetProblems].
func (c *BlockingClient) ProblemsetProblems(req *ProblemsetProblemsRequest) ([]model.ProblemSetProblems, error) {
	return c.client.ProblemsetProblems(context.Background(), req)
}

// ProblemsetRecentStatus behaves like [Client.ProblemsetRecentStatus].
func (c *BlockingClient) ProblemsetRecentStatus(req *ProblemsetRecentStatusRequest) ([]model.Submission, error) {
	return c.client.ProblemsetRecentStatus(context.Background(), req)
}

// RecentActions behaves like [Client.RecentActions].
func (c *BlockingClient) RecentActions(maxCount int64) ([]model.RecentAction, error) {
	return c.client.RecentActions(context.Background(), maxCount)
}

// UserBlogEntries behaves like [Client.UserBlogEntries].
func (c *BlockingClient) UserBlogEntries(handle string) ([]model.BlogEntry, error) {
	return c.client.UserBlogEntries(context.Background(), handle)
}

// UserFriends behaves like [Client.UserFriends].
func (c *BlockingClient) UserFriends(req *UserFriendsRequest) ([]string, error) {
	return c.client.UserFriends(context.Background(), req)
}

// UserInfo behaves like [Client.UserInfo].
func (c *BlockingClient) UserInfo(req *UserInfoRequest) ([]model.User, error) {
	return c.client.UserInfo(context.Background(), req)
}

// UserRatedList behaves like [Client.UserRatedList].
func (c *BlockingClient) UserRatedList(req *UserRatedListRequest) ([]model.User, error) {
	return c.client.UserRatedList(context.Background(), req)
}

// UserRating behaves like [Client.UserRating].
func (c *BlockingClient) UserRating(handle string) ([]model.RatingChange, error) {
	return c.client.UserRating(context.Background(), handle)
}

// UserStatus behaves like [Client.UserStatus].
func (c *BlockingClient) UserStatus(req *UserStatusRequest) ([]model.Submission, error) {
	return c.client.UserStatus(context.Background(), req)
}

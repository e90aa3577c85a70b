package codeforces

//
// user.go - the user.* operations.
//

import (
	"context"
	"strings"

	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/model"
	"github.com/contestwire/codeforces/optional"
)

// UserBlogEntries invokes user.blogEntries: it returns the blog
// entries of the given user in short form.
func (c *Client) UserBlogEntries(ctx context.Context, handle string) ([]model.BlogEntry, error) {
	query := apiurl.NewQuery()
	query.String("handle", handle)
	return call[model.BlogEntry](ctx, c, apiurl.MethodUserBlogEntries, query)
}

// UserFriendsRequest contains the parameters of [Client.UserFriends].
type UserFriendsRequest struct {
	// OnlyOnline OPTIONALLY restricts the result to online friends.
	OnlyOnline optional.Value[bool]
}

// UserFriends invokes user.friends: it returns the friends of the
// authorized user as a list of handles. This operation requires
// signing, so the client must be constructed with [Config.Auth].
func (c *Client) UserFriends(ctx context.Context, req *UserFriendsRequest) ([]string, error) {
	query := apiurl.NewQuery()
	query.MaybeBool("onlyOnline", req.OnlyOnline)
	return call[string](ctx, c, apiurl.MethodUserFriends, query)
}

// UserInfoRequest contains the parameters of [Client.UserInfo].
type UserInfoRequest struct {
	// Handles is the MANDATORY list of handles to look up, at most 10000.
	Handles []string

	// CheckHistoricHandles OPTIONALLY enables searching by former handles.
	CheckHistoricHandles optional.Value[bool]
}

// UserInfo invokes user.info: it returns information about the
// given users.
func (c *Client) UserInfo(ctx context.Context, req *UserInfoRequest) ([]model.User, error) {
	query := apiurl.NewQuery()
	query.String("handles", strings.Join(req.Handles, ";"))
	query.MaybeBool("checkHistoricHandles", req.CheckHistoricHandles)
	return call[model.User](ctx, c, apiurl.MethodUserInfo, query)
}

// UserRatedListRequest contains the parameters of [Client.UserRatedList].
type UserRatedListRequest struct {
	// ActiveOnly OPTIONALLY restricts the result to users that
	// participated in a rated contest recently.
	ActiveOnly optional.Value[bool]

	// IncludeRetired OPTIONALLY includes users that have not been
	// online for a long time.
	IncludeRetired optional.Value[bool]

	// ContestID OPTIONALLY restricts the result to the participants
	// of the given contest.
	ContestID optional.Value[int64]
}

// UserRatedList invokes user.ratedList: it returns the list of users
// that have participated in at least one rated contest.
func (c *Client) UserRatedList(ctx context.Context, req *UserRatedListRequest) ([]model.User, error) {
	query := apiurl.NewQuery()
	query.MaybeBool("activeOnly", req.ActiveOnly)
	query.MaybeBool("includeRetired", req.IncludeRetired)
	query.MaybeInt("contestId", req.ContestID)
	return call[model.User](ctx, c, apiurl.MethodUserRatedList, query)
}

// UserRating invokes user.rating: it returns the rating history of the
// given user.
func (c *Client) UserRating(ctx context.Context, handle string) ([]model.RatingChange, error) {
	query := apiurl.NewQuery()
	query.String("handle", handle)
	return call[model.RatingChange](ctx, c, apiurl.MethodUserRating, query)
}

// UserStatusRequest contains the parameters of [Client.UserStatus].
type UserStatusRequest struct {
	// Handle is the MANDATORY handle whose submissions to return.
	Handle string

	// From is the OPTIONAL 1-based index of the first submission to return.
	From optional.Value[int64]

	// Count is the OPTIONAL number of submissions to return.
	Count optional.Value[int64]
}

// UserStatus invokes user.status: it returns the submissions of the
// given user, most recent first.
func (c *Client) UserStatus(ctx context.Context, req *UserStatusRequest) ([]model.Submission, error) {
	query := apiurl.NewQuery()
	query.String("handle", req.Handle)
	query.MaybeInt("from", req.From)
	query.MaybeInt("count", req.Count)
	return call[model.Submission](ctx, c, apiurl.MethodUserStatus, query)
}

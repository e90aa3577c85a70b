package codeforces

//
// contest.go - the contest.* operations.
//

import (
	"context"

	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/model"
	"github.com/contestwire/codeforces/optional"
)

// ContestHacksRequest contains the parameters of [Client.ContestHacks].
type ContestHacksRequest struct {
	// ContestID is the MANDATORY contest id.
	ContestID int64

	// AsManager OPTIONALLY requests data available to contest managers.
	AsManager optional.Value[bool]
}

// ContestHacks invokes contest.hacks: it returns the hacks of the
// given contest. Full information is available only after the contest.
func (c *Client) ContestHacks(ctx context.Context, req *ContestHacksRequest) ([]model.Hack, error) {
	query := apiurl.NewQuery()
	query.Int("contestId", req.ContestID)
	query.MaybeBool("asManager", req.AsManager)
	return call[model.Hack](ctx, c, apiurl.MethodContestHacks, query)
}

// ContestListRequest contains the parameters of [Client.ContestList].
type ContestListRequest struct {
	// Gym OPTIONALLY selects gym contests instead of regular ones.
	Gym optional.Value[bool]
}

// ContestList invokes contest.list: it returns information about all
// available contests.
func (c *Client) ContestList(ctx context.Context, req *ContestListRequest) ([]model.Contest, error) {
	query := apiurl.NewQuery()
	query.MaybeBool("gym", req.Gym)
	return call[model.Contest](ctx, c, apiurl.MethodContestList, query)
}

// ContestRatingChanges invokes contest.ratingChanges: it returns the
// rating changes produced by the given contest.
func (c *Client) ContestRatingChanges(ctx context.Context, contestID int64) ([]model.RatingChange, error) {
	query := apiurl.NewQuery()
	query.Int("contestId", contestID)
	return call[model.RatingChange](ctx, c, apiurl.MethodContestRatingChanges, query)
}

// ContestStandingsRequest contains the parameters of [Client.ContestStandings].
type ContestStandingsRequest struct {
	// ContestID is the MANDATORY contest id.
	ContestID int64

	// AsManager OPTIONALLY requests data available to contest managers.
	AsManager optional.Value[bool]

	// From is the OPTIONAL 1-based index of the first standings row to return.
	From optional.Value[int64]

	// Count is the OPTIONAL number of standings rows to return.
	Count optional.Value[int64]

	// ShowUnofficial OPTIONALLY includes unofficial participants.
	ShowUnofficial optional.Value[bool]
}

// ContestStandings invokes contest.standings: it returns the contest
// description, the problems, and the requested ranklist rows.
func (c *Client) ContestStandings(ctx context.Context, req *ContestStandingsRequest) ([]model.Standings, error) {
	query := apiurl.NewQuery()
	query.Int("contestId", req.ContestID)
	query.MaybeBool("asManager", req.AsManager)
	query.MaybeInt("from", req.From)
	query.MaybeInt("count", req.Count)
	query.MaybeBool("showUnofficial", req.ShowUnofficial)
	return call[model.Standings](ctx, c, apiurl.MethodContestStandings, query)
}

// ContestStatusRequest contains the parameters of [Client.ContestStatus].
type ContestStatusRequest struct {
	// ContestID is the MANDATORY contest id.
	ContestID int64

	// AsManager OPTIONALLY requests data available to contest managers.
	AsManager optional.Value[bool]

	// Handle OPTIONALLY restricts the results to one participant.
	Handle optional.Value[string]

	// From is the OPTIONAL 1-based index of the first submission to return.
	From optional.Value[int64]

	// Count is the OPTIONAL number of submissions to return.
	Count optional.Value[int64]
}

// ContestStatus invokes contest.status: it returns the submissions of
// the given contest, most recent first.
func (c *Client) ContestStatus(ctx context.Context, req *ContestStatusRequest) ([]model.Submission, error) {
	query := apiurl.NewQuery()
	query.Int("contestId", req.ContestID)
	query.MaybeBool("asManager", req.AsManager)
	query.MaybeString("handle", req.Handle)
	query.MaybeInt("from", req.From)
	query.MaybeInt("count", req.Count)
	return call[model.Submission](ctx, c, apiurl.MethodContestStatus, query)
}

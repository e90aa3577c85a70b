package codeforces

//
// problemset.go - the problemset.* operations.
//

import (
	"context"
	"strings"

	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/model"
	"github.com/contestwire/codeforces/optional"
)

// ProblemsetProblemsRequest contains the parameters of
// [Client.ProblemsetProblems]. Tags and ProblemsetName are mutually
// exclusive filters: when both are set, Tags wins and ProblemsetName
// is never emitted.
type ProblemsetProblemsRequest struct {
	// Tags OPTIONALLY filters problems by tags.
	Tags []string

	// ProblemsetName OPTIONALLY selects a custom problemset
	// (e.g. "acmsguru") instead of the default one.
	ProblemsetName optional.Value[string]
}

// ProblemsetProblems invokes problemset.problems: it returns the
// problems of a problemset together with their statistics.
func (c *Client) ProblemsetProblems(ctx context.Context, req *ProblemsetProblemsRequest) ([]model.ProblemSetProblems, error) {
	query := apiurl.NewQuery()
	switch {
	case len(req.Tags) > 0:
		query.String("tags", strings.Join(req.Tags, ";"))
	case !req.ProblemsetName.IsNone():
		query.String("problemsetName", req.ProblemsetName.Unwrap())
	}
	return call[model.ProblemSetProblems](ctx, c, apiurl.MethodProblemsetProblems, query)
}

// ProblemsetRecentStatusRequest contains the parameters of
// [Client.ProblemsetRecentStatus].
type ProblemsetRecentStatusRequest struct {
	// Count is the MANDATORY number of submissions to return, at most 1000.
	Count int64

	// ProblemsetName OPTIONALLY selects a custom problemset.
	ProblemsetName optional.Value[string]
}

// ProblemsetRecentStatus invokes problemset.recentStatus: it returns
// the most recent submissions of a problemset.
func (c *Client) ProblemsetRecentStatus(ctx context.Context, req *ProblemsetRecentStatusRequest) ([]model.Submission, error) {
	query := apiurl.NewQuery()
	query.Int("count", req.Count)
	query.MaybeString("problemsetName", req.ProblemsetName)
	return call[model.Submission](ctx, c, apiurl.MethodProblemsetRecentStatus, query)
}

package model

//
// Records returned by the Codeforces API.
//
// Every scalar field is an optional.Value because the remote API omits
// fields rather than sending them as null: an absent field always
// decodes to an empty optional, never to a decoding error. List-valued
// fields are plain slices and are nil when absent.
//

import "github.com/contestwire/codeforces/optional"

// User represents a Codeforces user.
type User struct {
	// Handle is the Codeforces user handle.
	Handle optional.Value[string] `json:"handle"`

	// VKID is the user id for the VK social network, if shared.
	VKID optional.Value[string] `json:"vkId"`

	// OpenID is the OpenID identifier, if shared.
	OpenID optional.Value[string] `json:"openId"`

	// FirstName is the localized first name.
	FirstName optional.Value[string] `json:"firstName"`

	// LastName is the localized last name.
	LastName optional.Value[string] `json:"lastName"`

	// Country is the localized country.
	Country optional.Value[string] `json:"country"`

	// City is the localized city.
	City optional.Value[string] `json:"city"`

	// Organization is the localized organization.
	Organization optional.Value[string] `json:"organization"`

	// Contribution is the user's contribution to the community.
	Contribution optional.Value[int64] `json:"contribution"`

	// Rank is the localized rank.
	Rank optional.Value[string] `json:"rank"`

	// Rating is the user's rating.
	Rating optional.Value[int64] `json:"rating"`

	// MaxRank is the localized maximum rank ever achieved.
	MaxRank optional.Value[string] `json:"maxRank"`

	// MaxRating is the maximum rating ever achieved.
	MaxRating optional.Value[int64] `json:"maxRating"`

	// LastOnlineTimeSeconds is the unix time when the user was last seen online.
	LastOnlineTimeSeconds optional.Value[int64] `json:"lastOnlineTimeSeconds"`

	// RegistrationTimeSeconds is the unix time when the user registered.
	RegistrationTimeSeconds optional.Value[int64] `json:"registrationTimeSeconds"`

	// FriendOfCount is the number of users who have this user in friends.
	FriendOfCount optional.Value[int64] `json:"friendOfCount"`

	// Avatar is the URL of the user's avatar.
	Avatar optional.Value[string] `json:"avatar"`

	// TitlePhoto is the URL of the user's title photo.
	TitlePhoto optional.Value[string] `json:"titlePhoto"`

	// Email is the email address, shared only if permitted.
	Email optional.Value[string] `json:"email"`
}

// Member represents a member of a party.
type Member struct {
	// Handle is the Codeforces user handle.
	Handle optional.Value[string] `json:"handle"`

	// Name is the user's name, if available.
	Name optional.Value[string] `json:"name"`
}

// BlogEntry represents a Codeforces blog entry. The Content field is
// omitted when the server returns the short version of the entry.
type BlogEntry struct {
	// ID uniquely identifies the blog entry.
	ID optional.Value[int64] `json:"id"`

	// OriginalLocale is the original locale of the entry.
	OriginalLocale optional.Value[string] `json:"originalLocale"`

	// CreationTimeSeconds is the unix time when the entry was created.
	CreationTimeSeconds optional.Value[int64] `json:"creationTimeSeconds"`

	// AuthorHandle is the handle of the entry author.
	AuthorHandle optional.Value[string] `json:"authorHandle"`

	// Title is the localized title.
	Title optional.Value[string] `json:"title"`

	// Content is the localized content.
	Content optional.Value[string] `json:"content"`

	// Locale is the locale of the entry.
	Locale optional.Value[string] `json:"locale"`

	// ModificationTimeSeconds is the unix time of the last modification.
	ModificationTimeSeconds optional.Value[int64] `json:"modificationTimeSeconds"`

	// AllowViewHistory indicates whether viewing the entry history is allowed.
	AllowViewHistory optional.Value[bool] `json:"allowViewHistory"`

	// Tags contains the entry tags.
	Tags []string `json:"tags"`

	// Rating is the entry rating.
	Rating optional.Value[int64] `json:"rating"`
}

// Comment represents a comment on a blog entry.
type Comment struct {
	// ID uniquely identifies the comment.
	ID optional.Value[int64] `json:"id"`

	// CreationTimeSeconds is the unix time when the comment was created.
	CreationTimeSeconds optional.Value[int64] `json:"creationTimeSeconds"`

	// CommentatorHandle is the handle of the comment author.
	CommentatorHandle optional.Value[string] `json:"commentatorHandle"`

	// Locale is the locale of the comment.
	Locale optional.Value[string] `json:"locale"`

	// Text is the comment text.
	Text optional.Value[string] `json:"text"`

	// ParentCommentID identifies the parent comment, if any.
	ParentCommentID optional.Value[int64] `json:"parentCommentId"`

	// Rating is the comment rating.
	Rating optional.Value[int64] `json:"rating"`
}

// RecentAction represents a recent action.
type RecentAction struct {
	// TimeSeconds is the unix time of the action.
	TimeSeconds optional.Value[int64] `json:"timeSeconds"`

	// BlogEntry is the related blog entry in short form, if applicable.
	BlogEntry optional.Value[BlogEntry] `json:"blogEntry"`

	// Comment is the related comment, if applicable.
	Comment optional.Value[Comment] `json:"comment"`
}

// RatingChange represents a user's rating change after a contest.
type RatingChange struct {
	// ContestID identifies the contest.
	ContestID optional.Value[int64] `json:"contestId"`

	// ContestName is the localized contest name.
	ContestName optional.Value[string] `json:"contestName"`

	// Handle is the Codeforces user handle.
	Handle optional.Value[string] `json:"handle"`

	// Rank is the user's rank in the contest.
	Rank optional.Value[int64] `json:"rank"`

	// RatingUpdateTimeSeconds is the unix time when the rating was updated.
	RatingUpdateTimeSeconds optional.Value[int64] `json:"ratingUpdateTimeSeconds"`

	// OldRating is the rating before the contest.
	OldRating optional.Value[int64] `json:"oldRating"`

	// NewRating is the rating after the contest.
	NewRating optional.Value[int64] `json:"newRating"`
}

// Contest represents a contest.
type Contest struct {
	// ID uniquely identifies the contest.
	ID optional.Value[int64] `json:"id"`

	// Name is the localized contest name.
	Name optional.Value[string] `json:"name"`

	// Type is the contest type: "CF", "IOI", or "ICPC".
	Type optional.Value[string] `json:"type"`

	// Phase is the contest phase, e.g. "BEFORE", "CODING", "FINISHED".
	Phase optional.Value[string] `json:"phase"`

	// Frozen indicates whether the ranklist is frozen.
	Frozen optional.Value[bool] `json:"frozen"`

	// DurationSeconds is the contest duration in seconds.
	DurationSeconds optional.Value[int64] `json:"durationSeconds"`

	// StartTimeSeconds is the unix time of the contest start.
	StartTimeSeconds optional.Value[int64] `json:"startTimeSeconds"`

	// RelativeTimeSeconds is the seconds elapsed since the start, possibly negative.
	RelativeTimeSeconds optional.Value[int64] `json:"relativeTimeSeconds"`

	// PreparedBy is the handle of the contest creator.
	PreparedBy optional.Value[string] `json:"preparedBy"`

	// WebsiteURL is the URL of the contest-related website.
	WebsiteURL optional.Value[string] `json:"websiteUrl"`

	// Description is the localized description.
	Description optional.Value[string] `json:"description"`

	// Difficulty is a difficulty scale from 1 to 5.
	Difficulty optional.Value[int64] `json:"difficulty"`

	// Kind is the localized human-readable contest type.
	Kind optional.Value[string] `json:"kind"`

	// ICPCRegion is the localized region name for official ICPC contests.
	ICPCRegion optional.Value[string] `json:"icpcRegion"`

	// Country is the localized country name.
	Country optional.Value[string] `json:"country"`

	// City is the localized city name.
	City optional.Value[string] `json:"city"`

	// Season is the contest season.
	Season optional.Value[string] `json:"season"`
}

// Party represents a party participating in a contest.
type Party struct {
	// ContestID identifies the contest, if applicable.
	ContestID optional.Value[int64] `json:"contestId"`

	// Members lists the party members.
	Members []Member `json:"members"`

	// ParticipantType is e.g. "CONTESTANT", "PRACTICE", "VIRTUAL".
	ParticipantType optional.Value[string] `json:"participantType"`

	// TeamID uniquely identifies the team, if the party is a team.
	TeamID optional.Value[int64] `json:"teamId"`

	// TeamName is the localized team name, if the party is a team or a ghost.
	TeamName optional.Value[string] `json:"teamName"`

	// Ghost indicates a party that participated off Codeforces.
	Ghost optional.Value[bool] `json:"ghost"`

	// Room is the assigned room number, if any.
	Room optional.Value[int64] `json:"room"`

	// StartTimeSeconds is the unix time when the party started the contest.
	StartTimeSeconds optional.Value[int64] `json:"startTimeSeconds"`
}

// Problem represents a problem.
type Problem struct {
	// ContestID identifies the contest containing the problem.
	ContestID optional.Value[int64] `json:"contestId"`

	// ProblemsetName is the short name of the problemset the problem belongs to.
	ProblemsetName optional.Value[string] `json:"problemsetName"`

	// Index is the problem index, usually a letter or a letter-number pair.
	Index optional.Value[string] `json:"index"`

	// Name is the localized problem name.
	Name optional.Value[string] `json:"name"`

	// Type is the problem type: "PROGRAMMING" or "QUESTION".
	Type optional.Value[string] `json:"type"`

	// Points is the maximum amount of points for the problem.
	Points optional.Value[float64] `json:"points"`

	// Rating is the problem difficulty rating.
	Rating optional.Value[int64] `json:"rating"`

	// Tags contains the problem tags.
	Tags []string `json:"tags"`
}

// ProblemStatistics represents statistics about a problem.
type ProblemStatistics struct {
	// ContestID identifies the contest containing the problem.
	ContestID optional.Value[int64] `json:"contestId"`

	// Index is the problem index.
	Index optional.Value[string] `json:"index"`

	// SolvedCount is the number of users who solved the problem.
	SolvedCount optional.Value[int64] `json:"solvedCount"`
}

// Submission represents a submission.
type Submission struct {
	// ID uniquely identifies the submission.
	ID optional.Value[int64] `json:"id"`

	// ContestID identifies the contest, if applicable.
	ContestID optional.Value[int64] `json:"contestId"`

	// CreationTimeSeconds is the unix time when the submission was created.
	CreationTimeSeconds optional.Value[int64] `json:"creationTimeSeconds"`

	// RelativeTimeSeconds is the seconds from contest start to the submission.
	RelativeTimeSeconds optional.Value[int64] `json:"relativeTimeSeconds"`

	// Problem is the problem the submission is for.
	Problem optional.Value[Problem] `json:"problem"`

	// Author is the party that made the submission.
	Author optional.Value[Party] `json:"author"`

	// ProgrammingLanguage is the language of the submission.
	ProgrammingLanguage optional.Value[string] `json:"programmingLanguage"`

	// Verdict is the submission verdict, e.g. "OK", "WRONG_ANSWER".
	Verdict optional.Value[string] `json:"verdict"`

	// Testset is the testset used for judging, e.g. "SAMPLES", "PRETESTS".
	Testset optional.Value[string] `json:"testset"`

	// PassedTestCount is the number of passed tests.
	PassedTestCount optional.Value[int64] `json:"passedTestCount"`

	// TimeConsumedMillis is the maximum time in milliseconds spent on one test.
	TimeConsumedMillis optional.Value[int64] `json:"timeConsumedMillis"`

	// MemoryConsumedBytes is the maximum memory in bytes spent on one test.
	MemoryConsumedBytes optional.Value[int64] `json:"memoryConsumedBytes"`

	// Points is the amount of scored points, for IOI-like contests.
	Points optional.Value[float64] `json:"points"`
}

// Hack represents a hack attempt during a contest.
type Hack struct {
	// ID uniquely identifies the hack.
	ID optional.Value[int64] `json:"id"`

	// CreationTimeSeconds is the unix time when the hack was created.
	CreationTimeSeconds optional.Value[int64] `json:"creationTimeSeconds"`

	// Hacker is the party that made the hack.
	Hacker optional.Value[Party] `json:"hacker"`

	// Defender is the party defending against the hack.
	Defender optional.Value[Party] `json:"defender"`

	// Verdict is e.g. "HACK_SUCCESSFUL" or "HACK_UNSUCCESSFUL".
	Verdict optional.Value[string] `json:"verdict"`

	// Problem is the hacked problem.
	Problem optional.Value[Problem] `json:"problem"`

	// Test contains the hack test, if available.
	Test optional.Value[string] `json:"test"`

	// JudgeProtocol contains the judge protocol with the
	// "manual", "protocol", and "verdict" keys.
	JudgeProtocol map[string]string `json:"judgeProtocol"`
}

// ProblemResult represents a party's result for a given problem.
type ProblemResult struct {
	// Points is the amount of scored points.
	Points optional.Value[float64] `json:"points"`

	// Penalty is the ICPC-style penalty for the problem.
	Penalty optional.Value[int64] `json:"penalty"`

	// RejectedAttemptCount is the number of incorrect submissions.
	RejectedAttemptCount optional.Value[int64] `json:"rejectedAttemptCount"`

	// Type is either "PRELIMINARY" or "FINAL".
	Type optional.Value[string] `json:"type"`

	// BestSubmissionTimeSeconds is the seconds from contest start to the
	// submission that brought the maximal amount of points.
	BestSubmissionTimeSeconds optional.Value[int64] `json:"bestSubmissionTimeSeconds"`
}

// RankListRow represents a row of a contest ranklist.
type RankListRow struct {
	// Party is the party this row is about.
	Party optional.Value[Party] `json:"party"`

	// Rank is the party rank, zero for practice and similar parties.
	Rank optional.Value[int64] `json:"rank"`

	// Points is the total amount of scored points.
	Points optional.Value[float64] `json:"points"`

	// Penalty is the total ICPC-style penalty.
	Penalty optional.Value[int64] `json:"penalty"`

	// SuccessfulHackCount is the number of successful hacks.
	SuccessfulHackCount optional.Value[int64] `json:"successfulHackCount"`

	// UnsuccessfulHackCount is the number of unsuccessful hacks.
	UnsuccessfulHackCount optional.Value[int64] `json:"unsuccessfulHackCount"`

	// ProblemResults contains the party results for each problem, in the
	// same order as the problems list of the standings.
	ProblemResults []ProblemResult `json:"problemResults"`

	// LastSubmissionTimeSeconds is the unix time of the last submission
	// that added points to the score, for IOI contests.
	LastSubmissionTimeSeconds optional.Value[int64] `json:"lastSubmissionTimeSeconds"`
}

// Standings is the composite payload of contest.standings.
type Standings struct {
	// Contest describes the contest.
	Contest optional.Value[Contest] `json:"contest"`

	// Problems lists the contest problems.
	Problems List[Problem] `json:"problems"`

	// Rows lists the requested ranklist rows.
	Rows List[RankListRow] `json:"rows"`
}

// ProblemSetProblems is the composite payload of problemset.problems.
type ProblemSetProblems struct {
	// Problems lists the problems of the problemset.
	Problems List[Problem] `json:"problems"`

	// ProblemStatistics lists the statistics about each problem.
	ProblemStatistics List[ProblemStatistics] `json:"problemStatistics"`
}

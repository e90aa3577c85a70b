// Command cfquery is a simple command line client for the
// Codeforces API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/contestwire/codeforces"
	"github.com/contestwire/codeforces/internal/runtimex"
	"github.com/contestwire/codeforces/optional"
)

var (
	app       = kingpin.New("cfquery", "Query the Codeforces API from the command line.")
	debug     = app.Flag("debug", "Toggle debug logging.").Short('v').Bool()
	apiKey    = app.Flag("api-key", "API key for signed requests.").Envar("CFQUERY_API_KEY").String()
	apiSecret = app.Flag("api-secret", "API secret for signed requests.").Envar("CFQUERY_API_SECRET").String()

	userInfo        = app.Command("user-info", "Show public information about the given handles.")
	userInfoHandles = userInfo.Arg("handle", "Codeforces handle.").Required().Strings()

	userRating       = app.Command("user-rating", "Show the rating history of a handle.")
	userRatingHandle = userRating.Arg("handle", "Codeforces handle.").Required().String()

	userFriends = app.Command("user-friends", "List the friends of the authorized user (requires credentials).")
	onlyOnline  = userFriends.Flag("only-online", "Only list friends currently online.").Bool()

	contestList    = app.Command("contest-list", "List available contests.")
	contestListGym = contestList.Flag("gym", "List gym contests instead of regular ones.").Bool()

	recentActions    = app.Command("recent-actions", "Show recent actions.")
	recentActionsMax = recentActions.Flag("max-count", "Maximum number of actions to return.").Default("30").Int64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	config := &codeforces.Config{Logger: log.Log}
	if *apiKey != "" && *apiSecret != "" {
		config.Auth = &codeforces.AuthConfig{Key: *apiKey, Secret: *apiSecret}
	}
	client := codeforces.NewClient(config)
	defer client.Close()

	ctx := context.Background()
	switch command {

	case userInfo.FullCommand():
		users, err := client.UserInfo(ctx, &codeforces.UserInfoRequest{
			Handles: *userInfoHandles,
		})
		if err != nil {
			log.WithError(err).Fatal("user.info failed")
		}
		for _, user := range users {
			rank := user.Rank.UnwrapOr("unrated")
			fmt.Printf(
				"%s\t%s\t%d\n",
				rankColor(rank).Sprint(user.Handle.UnwrapOr("?")),
				rank,
				user.Rating.UnwrapOr(0),
			)
		}

	case userRating.FullCommand():
		changes, err := client.UserRating(ctx, *userRatingHandle)
		if err != nil {
			log.WithError(err).Fatal("user.rating failed")
		}
		printJSON(changes)

	case userFriends.FullCommand():
		friends, err := client.UserFriends(ctx, &codeforces.UserFriendsRequest{
			OnlyOnline: optional.Some(*onlyOnline),
		})
		if err != nil {
			log.WithError(err).Fatal("user.friends failed")
		}
		for _, friend := range friends {
			fmt.Println(friend)
		}

	case contestList.FullCommand():
		contests, err := client.ContestList(ctx, &codeforces.ContestListRequest{
			Gym: optional.Some(*contestListGym),
		})
		if err != nil {
			log.WithError(err).Fatal("contest.list failed")
		}
		printJSON(contests)

	case recentActions.FullCommand():
		actions, err := client.RecentActions(ctx, *recentActionsMax)
		if err != nil {
			log.WithError(err).Fatal("recentActions failed")
		}
		printJSON(actions)
	}
}

// printJSON prints any value as indented JSON.
func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	runtimex.PanicOnError(err, "json.MarshalIndent failed")
	fmt.Printf("%s\n", string(data))
}

// rankColor maps a Codeforces rank to the color the website uses.
func rankColor(rank string) *color.Color {
	switch {
	case strings.Contains(rank, "grandmaster"):
		return color.New(color.FgRed)
	case strings.Contains(rank, "master"):
		return color.New(color.FgYellow)
	case strings.Contains(rank, "expert"):
		return color.New(color.FgBlue)
	case strings.Contains(rank, "specialist"):
		return color.New(color.FgCyan)
	case strings.Contains(rank, "pupil"):
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

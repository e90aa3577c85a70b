package codeforces

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/contestwire/codeforces/optional"
)

func TestClientEndToEnd(t *testing.T) {

	t.Run("user.info returns the decoded user list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/user.info" {
				t.Error("unexpected path", r.URL.Path)
			}
			w.Write([]byte(`{"status":"OK","result":[{"handle":"tourist"}]}`))
		}))
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		users, err := client.UserInfo(context.Background(), &UserInfoRequest{
			Handles: []string{"tourist"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(users) != 1 || users[0].Handle.Unwrap() != "tourist" {
			t.Fatal("unexpected users", users)
		}
	})

	t.Run("a FAILED response becomes an APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(400)
			w.Write([]byte(`{"status":"FAILED","comment":"handle: User not found"}`))
		}))
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		users, err := client.UserInfo(context.Background(), &UserInfoRequest{
			Handles: []string{"nonexistent"},
		})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatal("expected an APIError, got", err)
		}
		if apiErr.Error() != "handle: User not found" {
			t.Fatal("unexpected message", apiErr.Error())
		}
		if users != nil {
			t.Fatal("expected a nil result")
		}
	})

	t.Run("contest.list decodes contests", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "gym=False" {
				t.Error("unexpected query", r.URL.RawQuery)
			}
			w.Write([]byte(`{"status":"OK","result":[{"id":566,"name":"VK Cup 2015"}]}`))
		}))
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		contests, err := client.ContestList(context.Background(), &ContestListRequest{
			Gym: optional.Some(false),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(contests) != 1 {
			t.Fatal("unexpected contests", contests)
		}
		if contests[0].ID.Unwrap() != 566 || contests[0].Name.Unwrap() != "VK Cup 2015" {
			t.Fatal("unexpected contest", contests[0])
		}
	})

	t.Run("a transport failure wraps ErrTransport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		URL := server.URL
		server.Close()

		client := NewClient(&Config{BaseURL: URL})
		defer client.Close()

		_, err := client.RecentActions(context.Background(), 10)
		if !errors.Is(err, ErrTransport) {
			t.Fatal("expected ErrTransport, got", err)
		}
	})

	t.Run("calls made after Close fail", func(t *testing.T) {
		client := NewClient(&Config{})
		if err := client.Close(); err != nil {
			t.Fatal(err)
		}
		_, err := client.UserRating(context.Background(), "tourist")
		if !errors.Is(err, ErrClientClosed) {
			t.Fatal("expected ErrClientClosed, got", err)
		}
	})
}

func TestClientQueryConstruction(t *testing.T) {

	// capture starts a server recording the raw query of each request
	// and answering with an empty OK envelope.
	capture := func(t *testing.T) (*httptest.Server, *string) {
		var (
			mu    sync.Mutex
			query string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			query = r.URL.RawQuery
			mu.Unlock()
			w.Write([]byte(`{"status":"OK","result":[]}`))
		}))
		t.Cleanup(server.Close)
		return server, &query
	}

	t.Run("user.info round-trips handles and the historic flag", func(t *testing.T) {
		server, query := capture(t)
		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		_, err := client.UserInfo(context.Background(), &UserInfoRequest{
			Handles:              []string{"A", "B"},
			CheckHistoricHandles: optional.Some(true),
		})
		if err != nil {
			t.Fatal(err)
		}
		if *query != "handles=A;B&checkHistoricHandles=True" {
			t.Fatal("unexpected query", *query)
		}
	})

	t.Run("unset optional parameters never appear", func(t *testing.T) {
		server, query := capture(t)
		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		_, err := client.ContestStandings(context.Background(), &ContestStandingsRequest{
			ContestID: 566,
		})
		if err != nil {
			t.Fatal(err)
		}
		if *query != "contestId=566" {
			t.Fatal("unexpected query", *query)
		}
	})

	t.Run("tags win over the problemset name filter", func(t *testing.T) {
		server, query := capture(t)
		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		_, err := client.ProblemsetProblems(context.Background(), &ProblemsetProblemsRequest{
			Tags:           []string{"dp", "graphs"},
			ProblemsetName: optional.Some("acmsguru"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if *query != "tags=dp;graphs" {
			t.Fatal("unexpected query", *query)
		}
	})

	t.Run("without filters problemset.problems sends no query at all", func(t *testing.T) {
		server, query := capture(t)
		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		_, err := client.ProblemsetProblems(context.Background(), &ProblemsetProblemsRequest{})
		if err != nil {
			t.Fatal(err)
		}
		if *query != "" {
			t.Fatal("unexpected query", *query)
		}
	})
}

func TestClientSigning(t *testing.T) {

	t.Run("signed calls carry apiKey, time, and apiSig", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := r.URL.Query()
			if values.Get("apiKey") != "my-key" {
				t.Error("unexpected apiKey", values.Get("apiKey"))
			}
			if values.Get("time") != "1695000000" {
				t.Error("unexpected time", values.Get("time"))
			}
			apiSig := values.Get("apiSig")
			if len(apiSig) != 6+128 {
				t.Error("unexpected apiSig length", len(apiSig))
			}
			if strings.Contains(r.URL.RawQuery, "my-secret") {
				t.Error("the URL leaks the secret")
			}
			w.Write([]byte(`{"status":"OK","result":["friend1","friend2"]}`))
		}))
		defer server.Close()

		client := NewClient(&Config{
			BaseURL: server.URL,
			Auth: &AuthConfig{
				Key:       "my-key",
				Secret:    "my-secret",
				FixedTime: optional.Some(int64(1695000000)),
			},
		})
		defer client.Close()

		friends, err := client.UserFriends(context.Background(), &UserFriendsRequest{
			OnlyOnline: optional.Some(false),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(friends) != 2 || friends[0] != "friend1" {
			t.Fatal("unexpected friends", friends)
		}
	})

	t.Run("without auth no signing parameters appear", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("apiKey") != "" || r.URL.Query().Get("apiSig") != "" {
				t.Error("unexpected signing parameters", r.URL.RawQuery)
			}
			w.Write([]byte(`{"status":"OK","result":[]}`))
		}))
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		defer client.Close()

		if _, err := client.RecentActions(context.Background(), 10); err != nil {
			t.Fatal(err)
		}
	})
}

func TestClientConcurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user.rating":
			w.Write([]byte(`{"status":"OK","result":[{"handle":"tourist","newRating":3979}]}`))
		case "/contest.list":
			w.Write([]byte(`{"status":"OK","result":[{"id":1}]}`))
		case "/recentActions":
			w.Write([]byte(`{"status":"OK","result":[{"timeSeconds":100}]}`))
		default:
			t.Error("unexpected path", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	defer client.Close()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		changes, err := client.UserRating(context.Background(), "tourist")
		if err != nil {
			t.Error(err)
			return
		}
		if len(changes) != 1 || changes[0].NewRating.Unwrap() != 3979 {
			t.Error("unexpected rating changes", changes)
		}
	}()

	go func() {
		defer wg.Done()
		contests, err := client.ContestList(context.Background(), &ContestListRequest{})
		if err != nil {
			t.Error(err)
			return
		}
		if len(contests) != 1 || contests[0].ID.Unwrap() != 1 {
			t.Error("unexpected contests", contests)
		}
	}()

	go func() {
		defer wg.Done()
		actions, err := client.RecentActions(context.Background(), 5)
		if err != nil {
			t.Error(err)
			return
		}
		if len(actions) != 1 || actions[0].TimeSeconds.Unwrap() != 100 {
			t.Error("unexpected actions", actions)
		}
	}()

	wg.Wait()
}

func TestBlockingClient(t *testing.T) {

	t.Run("wraps the cooperative client", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","result":[{"handle":"tourist"}]}`))
		}))
		defer server.Close()

		client := NewBlockingClient(&Config{BaseURL: server.URL})
		defer client.Close()

		users, err := client.UserInfo(&UserInfoRequest{Handles: []string{"tourist"}})
		if err != nil {
			t.Fatal(err)
		}
		if len(users) != 1 || users[0].Handle.Unwrap() != "tourist" {
			t.Fatal("unexpected users", users)
		}
	})

	t.Run("calls made after Close fail", func(t *testing.T) {
		client := NewBlockingClient(&Config{})
		if err := client.Close(); err != nil {
			t.Fatal(err)
		}
		if _, err := client.UserRating("tourist"); !errors.Is(err, ErrClientClosed) {
			t.Fatal("expected ErrClientClosed, got", err)
		}
	})
}

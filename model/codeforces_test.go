package model

import (
	"encoding/json"
	"testing"
)

func TestRecordDecoding(t *testing.T) {

	t.Run("absent fields decode to empty optionals", func(t *testing.T) {
		var user User
		if err := json.Unmarshal([]byte(`{"handle":"tourist","rating":3979}`), &user); err != nil {
			t.Fatal(err)
		}
		if user.Handle.Unwrap() != "tourist" {
			t.Fatal("unexpected handle")
		}
		if user.Rating.Unwrap() != 3979 {
			t.Fatal("unexpected rating")
		}
		if !user.Email.IsNone() || !user.Country.IsNone() {
			t.Fatal("expected absent fields to be none")
		}
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		var contest Contest
		input := []byte(`{"id":566,"name":"VK Cup","brandNewField":{"nested":true}}`)
		if err := json.Unmarshal(input, &contest); err != nil {
			t.Fatal(err)
		}
		if contest.ID.Unwrap() != 566 || contest.Name.Unwrap() != "VK Cup" {
			t.Fatal("unexpected contest", contest)
		}
	})

	t.Run("nested records decode through optionals", func(t *testing.T) {
		input := []byte(`{
			"id": 12345,
			"verdict": "OK",
			"problem": {"contestId": 566, "index": "A", "tags": ["dp"]},
			"author": {"members": [{"handle": "rng_58"}]}
		}`)
		var sub Submission
		if err := json.Unmarshal(input, &sub); err != nil {
			t.Fatal(err)
		}
		if sub.Problem.Unwrap().Index.Unwrap() != "A" {
			t.Fatal("unexpected problem index")
		}
		if members := sub.Author.Unwrap().Members; len(members) != 1 || members[0].Handle.Unwrap() != "rng_58" {
			t.Fatal("unexpected members")
		}
		if sub.Points.IsNone() != true {
			t.Fatal("expected no points")
		}
	})

	t.Run("standings tolerate a bare contest and bare rows", func(t *testing.T) {
		input := []byte(`{
			"contest": {"id": 566, "name": "VK Cup"},
			"problems": {"index": "A"},
			"rows": [{"rank": 1}]
		}`)
		var standings Standings
		if err := json.Unmarshal(input, &standings); err != nil {
			t.Fatal(err)
		}
		if standings.Contest.Unwrap().ID.Unwrap() != 566 {
			t.Fatal("unexpected contest id")
		}
		if len(standings.Problems) != 1 || standings.Problems[0].Index.Unwrap() != "A" {
			t.Fatal("unexpected problems")
		}
		if len(standings.Rows) != 1 || standings.Rows[0].Rank.Unwrap() != 1 {
			t.Fatal("unexpected rows")
		}
	})

	t.Run("hack judge protocol decodes as a map", func(t *testing.T) {
		input := []byte(`{"id":1,"judgeProtocol":{"manual":"false","verdict":"Successful hacking attempt"}}`)
		var hack Hack
		if err := json.Unmarshal(input, &hack); err != nil {
			t.Fatal(err)
		}
		if hack.JudgeProtocol["verdict"] != "Successful hacking attempt" {
			t.Fatal("unexpected judge protocol")
		}
	})
}

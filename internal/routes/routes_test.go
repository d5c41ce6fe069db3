package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
	"github.com/rejdeboer/tagpro-telemetry/internal/ingest"
	"github.com/rejdeboer/tagpro-telemetry/internal/search"
	"github.com/rejdeboer/tagpro-telemetry/pkg/httperrors"
)

func TestDecodeMatch(t *testing.T) {
	app := newTestApp()

	t.Run("success response", func(t *testing.T) {
		players := []string{gofakeit.Username(), gofakeit.Username()}
		req, err := http.NewRequest(http.MethodPost, "/decode", bytes.NewReader(testMatchFile(t, players...)))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)

		status := rr.Result().StatusCode
		if status != 200 {
			t.Fatalf("expected %d got %d: %s", 200, status, rr.Body.String())
		}

		var report ingest.Report
		if err := json.NewDecoder(rr.Body).Decode(&report); err != nil {
			t.Fatalf("error decoding json response: %v", err)
		}
		if report.Map != "Pilot" || len(report.Tiles) != 1 || len(report.Tiles[0]) != 3 {
			t.Errorf("unexpected map %s with tiles %v", report.Map, report.Tiles)
		}
		if len(report.Scoreboard) != 2 || len(report.Timeline) != 4 {
			t.Errorf("expected 2 players and 4 events got %d and %d", len(report.Scoreboard), len(report.Timeline))
		}
	})

	invalid := []struct {
		name string
		body string
	}{
		{"single team", `{"teams":[]}`},
		{"null team", `{"teams":[null,{}]}`},
		{"null player", `{"players":[null],"teams":[{},{}]}`},
		{"truncated json", `{"teams":`},
	}

	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/decode", bytes.NewReader([]byte(c.body)))
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			app.handler.ServeHTTP(rr, req)

			if status := rr.Result().StatusCode; status != 400 {
				t.Errorf("expected %d got %d", 400, status)
			}

			var response httperrors.Response
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("error decoding json response: %v", err)
			}
			if response.Code != httperrors.CodeInvalidMatch || response.Message == "" {
				t.Errorf("unexpected error response %v", response)
			}
		})
	}
}

func TestCreateMatch(t *testing.T) {
	app := newTestApp()
	players := []string{gofakeit.Username(), gofakeit.Username()}
	raw := testMatchFile(t, players...)

	cases := []struct {
		name             string
		token            string
		outputStatusCode int
	}{
		{
			name:             "without token",
			outputStatusCode: 401,
		},
		{
			name:             "invalid token",
			token:            "abc.def.ghi",
			outputStatusCode: 401,
		},
		{
			name:             "valid token",
			token:            app.token(t),
			outputStatusCode: 201,
		},
	}

	var created MatchCreated
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/match", bytes.NewReader(raw))
			if err != nil {
				t.Fatal(err)
			}
			if c.token != "" {
				req.Header.Add("Authorization", "Bearer "+c.token)
			}

			rr := httptest.NewRecorder()
			app.handler.ServeHTTP(rr, req)

			status := rr.Result().StatusCode
			if status != c.outputStatusCode {
				t.Fatalf("expected %d got %d", c.outputStatusCode, status)
			}
			if status == 201 {
				if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
					t.Fatalf("error decoding json response: %v", err)
				}
			}
		})
	}

	if created.ID == uuid.Nil {
		t.Fatal("expected a match to be created")
	}

	t.Run("get match", func(t *testing.T) {
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/match/"+created.ID.String(), nil))

		if status := rr.Result().StatusCode; status != 200 {
			t.Fatalf("expected %d got %d", 200, status)
		}

		var summary ingest.MatchSummary
		if err := json.NewDecoder(rr.Body).Decode(&summary); err != nil {
			t.Fatalf("error decoding json response: %v", err)
		}
		if summary.Match.ID != created.ID || len(summary.Players) != 2 {
			t.Errorf("unexpected summary %v", summary)
		}
	})

	t.Run("get raw match", func(t *testing.T) {
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/match/"+created.ID.String()+"/raw", nil))

		if status := rr.Result().StatusCode; status != 200 {
			t.Fatalf("expected %d got %d", 200, status)
		}
		if !bytes.Equal(rr.Body.Bytes(), raw) {
			t.Errorf("expected the uploaded match file back")
		}
	})

	t.Run("search player", func(t *testing.T) {
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/player?name="+players[0], nil))

		if status := rr.Result().StatusCode; status != 200 {
			t.Fatalf("expected %d got %d", 200, status)
		}

		var docs []search.PlayerDocument
		if err := json.NewDecoder(rr.Body).Decode(&docs); err != nil {
			t.Fatalf("error decoding json response: %v", err)
		}
		if len(docs) != 1 || docs[0].MatchID != created.ID {
			t.Errorf("unexpected search result %v", docs)
		}
	})
}

func TestGetMatchErrors(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name             string
		path             string
		outputStatusCode int
	}{
		{"invalid id", "/match/not-a-uuid", 400},
		{"unknown match", "/match/" + uuid.NewString(), 404},
		{"unknown raw match", "/match/" + uuid.NewString() + "/raw", 404},
		{"search without name", "/player", 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			app.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.path, nil))

			if status := rr.Result().StatusCode; status != c.outputStatusCode {
				t.Errorf("expected %d got %d", c.outputStatusCode, status)
			}
		})
	}
}

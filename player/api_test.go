package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serve(t *testing.T, f *fixture, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	api := NewAPIServer("", f.session, f.hands, f.dispatcher)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestAPIHealth(t *testing.T) {
	f := newFixture(t).registered()
	rec := serve(t, f, "GET", "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, actual %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "healthy" || resp["registered"] != true {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestAPISession(t *testing.T) {
	f := newFixture(t).registered()
	f.session.Settle(40)
	rec := serve(t, f, "GET", "/api/session", "")
	var snap SessionSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Name != "Alice" || !snap.Registered || snap.Net != 40 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Coordinator == nil || *snap.Coordinator != croupier {
		t.Fatalf("unexpected coordinator %v", snap.Coordinator)
	}
}

func TestAPIHands(t *testing.T) {
	f := newFixture(t)
	f.hands.Add(mustCard(t, "K", "s", "D1"))
	f.hands.Add(mustCard(t, "A", "d", "D1"))
	rec := serve(t, f, "GET", "/api/hands", "")
	var resp struct {
		Hands []struct {
			Deck  string `json:"deck"`
			Value int    `json:"value"`
			Soft  bool   `json:"soft"`
		} `json:"hands"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Hands) != 1 || resp.Hands[0].Value != 21 || !resp.Hands[0].Soft {
		t.Fatalf("unexpected hands %+v", resp.Hands)
	}
}

func TestAPICommand(t *testing.T) {
	f := newFixture(t).registered()
	rec := serve(t, f, "POST", "/api/command", `{"line":"bet 50"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, actual %d: %s", rec.Code, rec.Body.String())
	}
	expectSent(t, f, "bet Alice 50")
}

func TestAPICommandRejected(t *testing.T) {
	f := newFixture(t)
	for _, body := range []string{`{"line":"bet 50"}`, `{"line":"quit"}`, `not json`} {
		rec := serve(t, f, "POST", "/api/command", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, actual %d", body, rec.Code)
		}
	}
	expectSent(t, f)
}

func TestAPIMethodNotAllowed(t *testing.T) {
	f := newFixture(t)
	rec := serve(t, f, "POST", "/api/session", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, actual %d", rec.Code)
	}
}

package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func egyptServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"address":{"country_code":"eg","state":"الجيزة","road":"شارع %s"}}`, r.URL.Query().Get("lat"))
	}))
}

func TestPickerBrowseConfirmFlow(t *testing.T) {
	srv := egyptServer(t)
	defer srv.Close()
	p := NewPicker(NewClient(srv.URL))

	if p.Phase() != PhaseIdle {
		t.Fatal("new picker must start idle")
	}
	if _, err := p.Confirm(); err != ErrNoCandidate {
		t.Fatalf("confirm before browsing: expected ErrNoCandidate, got %v", err)
	}

	res, err := p.MoveEnd(context.Background(), 30.0, 31.2)
	if err != nil || !res.Usable {
		t.Fatalf("move end failed: %v %+v", err, res)
	}
	if p.Phase() != PhaseBrowsing {
		t.Fatal("move end must enter browsing")
	}

	loc, err := p.Confirm()
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if p.Phase() != PhaseConfirmed || loc.Name != res.Location.Name {
		t.Fatalf("expected confirmed %q, got phase %v loc %+v", res.Location.Name, p.Phase(), loc)
	}
}

func TestPickerDismissKeepsConfirmed(t *testing.T) {
	srv := egyptServer(t)
	defer srv.Close()
	p := NewPicker(NewClient(srv.URL))

	if _, err := p.MoveEnd(context.Background(), 30.0, 31.2); err != nil {
		t.Fatalf("move end failed: %v", err)
	}
	first, _ := p.Confirm()

	// browse again but close the modal without confirming
	if _, err := p.MoveEnd(context.Background(), 31.0, 30.0); err != nil {
		t.Fatalf("move end failed: %v", err)
	}
	p.Dismiss()

	if p.Phase() != PhaseIdle {
		t.Fatal("dismiss must return to idle")
	}
	if got := p.Confirmed(); got == nil || got.Name != first.Name {
		t.Fatalf("dismiss must keep the earlier confirmed selection, got %+v", got)
	}
	if _, err := p.Confirm(); err != ErrNoCandidate {
		t.Fatalf("confirm after dismiss: expected ErrNoCandidate, got %v", err)
	}
}

func TestPickerUnusablePointClearsCandidate(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			fmt.Fprint(w, `{"address":{"country_code":"eg","state":"القاهرة"}}`)
			return
		}
		fmt.Fprint(w, `{"address":{"country_code":"sd","state":"الخرطوم"}}`)
	}))
	defer srv.Close()
	p := NewPicker(NewClient(srv.URL))

	if _, err := p.MoveEnd(context.Background(), 30.0, 31.2); err != nil {
		t.Fatalf("move end failed: %v", err)
	}
	res, err := p.MoveEnd(context.Background(), 21.0, 32.0)
	if err != nil {
		t.Fatalf("move end failed: %v", err)
	}
	if res.Usable {
		t.Fatal("expected unusable out-of-country result")
	}
	if _, err := p.Confirm(); err != ErrNoCandidate {
		t.Fatalf("expected ErrNoCandidate after drifting outside, got %v", err)
	}
}

func TestPickerDiscardsStaleLookup(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "30" {
			<-release
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"address":{"country_code":"eg","state":"منطقة %s"}}`, r.URL.Query().Get("lat"))
	}))
	defer srv.Close()
	p := NewPicker(NewClient(srv.URL))

	slow := make(chan error, 1)
	go func() {
		_, err := p.MoveEnd(context.Background(), 30, 31)
		slow <- err
	}()

	// let the slow lookup register its generation first
	time.Sleep(50 * time.Millisecond)

	res, err := p.MoveEnd(context.Background(), 29, 31)
	if err != nil {
		t.Fatalf("fast move end failed: %v", err)
	}
	close(release)

	if err := <-slow; err != ErrStaleLookup {
		t.Fatalf("slow lookup: expected ErrStaleLookup, got %v", err)
	}
	loc, err := p.Confirm()
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if loc.Name != res.Location.Name {
		t.Fatalf("stale lookup overwrote the newer candidate: %q vs %q", loc.Name, res.Location.Name)
	}
}

func TestPickerSelectSuggestion(t *testing.T) {
	p := NewPicker(NewClient(""))
	lat, lng := 30.05, 31.33
	loc := p.Select(Location{Lat: &lat, Lng: &lng, Name: "مدينة نصر, القاهرة"})
	if p.Phase() != PhaseConfirmed {
		t.Fatal("suggestion pick must confirm directly")
	}
	if got := p.Confirmed(); got != loc || got.Name != "مدينة نصر, القاهرة" {
		t.Fatalf("expected confirmed suggestion, got %+v", got)
	}
}

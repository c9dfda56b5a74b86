package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRefreshParsesAndPublishes(t *testing.T) {
	feed := feedServer(t, "# comment\n\nMailinator.com\n10minutemail.com  \nmailinator.com\n")
	s := New(Config{Feeds: []string{feed.URL}})

	added, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2 (comments, blanks and dupes dropped)", added)
	}
	if !s.Contains("mailinator.com") || !s.Contains("10minutemail.com") {
		t.Fatal("feed domains missing from snapshot")
	}
	if !s.Contains("MAILINATOR.COM") {
		t.Fatal("lookup must be case-insensitive")
	}
	if s.Contains("gmail.com") {
		t.Fatal("gmail.com must not be disposable")
	}
}

func TestRefreshUnionsAllFeeds(t *testing.T) {
	a := feedServer(t, "trashmail.com\n")
	b := feedServer(t, "guerrillamail.com\ntrashmail.com\n")
	s := New(Config{Feeds: []string{a.URL, b.URL}})

	added, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}
	st := s.Stats()
	if st.FromFeeds != 2 || st.Total != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRefreshFailureKeepsOldSnapshot(t *testing.T) {
	good := feedServer(t, "yopmail.com\n")
	s := New(Config{Feeds: []string{good.URL}})
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	s.cfg.Feeds = []string{broken.URL}
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected an error from the failing feed")
	}
	if !s.Contains("yopmail.com") {
		t.Fatal("failed refresh must leave the previous snapshot in place")
	}
}

func TestManualEntriesSurviveRefresh(t *testing.T) {
	feed := feedServer(t, "tempmail.org\n")
	s := New(Config{Feeds: []string{feed.URL}})

	if err := s.Add("Spam.Example.COM"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !s.Contains("spam.example.com") {
		t.Fatal("manual entry must be visible immediately")
	}

	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !s.Contains("spam.example.com") {
		t.Fatal("manual entry must survive a feed refresh")
	}
	if !s.Contains("tempmail.org") {
		t.Fatal("feed entry missing after refresh")
	}

	st := s.Stats()
	if st.Manual != 1 || st.FromFeeds != 1 || st.Total != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestAddRejectsGarbage(t *testing.T) {
	s := New(Config{})
	if err := s.Add("   "); err == nil {
		t.Fatal("blank domain must be rejected")
	}
	if err := s.Add("nodots"); err == nil {
		t.Fatal("dotless domain must be rejected")
	}
}

func TestRefreshSingleFlight(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte("slowmail.com\n"))
	}))
	t.Cleanup(slow.Close)
	t.Cleanup(func() { close(release) })

	s := New(Config{Feeds: []string{slow.URL}})

	done := make(chan error, 1)
	go func() {
		_, err := s.Refresh(context.Background())
		done <- err
	}()

	// wait until the first refresh is inside the fetch
	deadline := time.After(2 * time.Second)
	for hits.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("first refresh never started")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	if _, err := s.Refresh(context.Background()); err != ErrRefreshInFlight {
		t.Fatalf("second refresh err = %v, want ErrRefreshInFlight", err)
	}

	release <- struct{}{}
	if err := <-done; err != nil {
		t.Fatalf("first refresh: %v", err)
	}
}

func TestBootstrapIfEmpty(t *testing.T) {
	feed := feedServer(t, "sharklasers.com\n")
	s := New(Config{Feeds: []string{feed.URL}})

	if err := s.BootstrapIfEmpty(context.Background()); err != nil {
		t.Fatalf("BootstrapIfEmpty: %v", err)
	}
	if !s.Contains("sharklasers.com") {
		t.Fatal("bootstrap did not load the feed")
	}

	// second call is a no-op even if the feed breaks afterwards
	s.cfg.Feeds = []string{"http://127.0.0.1:0/unreachable"}
	if err := s.BootstrapIfEmpty(context.Background()); err != nil {
		t.Fatalf("BootstrapIfEmpty on warm store: %v", err)
	}
}

package main

import (
	"context"
	"testing"
	"time"
)

func TestSweepExpiredSessions(t *testing.T) {
	app := testApp(t)
	app.withSession("active-session-000", func(*Session) {})
	app.withSession("expired-session-1", func(*Session) {})
	app.withSession("expired-session-2", func(*Session) {})

	app.SessionMutex.Lock()
	app.Sessions["expired-session-1"].LastAccessTime = time.Now().Add(-3 * time.Hour)
	app.Sessions["expired-session-2"].LastAccessTime = time.Now().Add(-5 * time.Hour)
	app.SessionMutex.Unlock()

	if removed := app.sweepExpiredSessions(2 * time.Hour); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	if _, ok := app.Sessions["active-session-000"]; !ok {
		t.Error("active session was swept")
	}
	if len(app.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(app.Sessions))
	}
}

func TestSweepRemountsOnNextVisit(t *testing.T) {
	app := testApp(t)
	app.withSession("returning-session", func(sess *Session) {
		if _, err := sess.Screen.SelectTile(0); err != nil {
			t.Fatal(err)
		}
		if _, err := sess.Screen.SubmitAnswer(0, "library"); err != nil {
			t.Fatal(err)
		}
	})
	app.sweepExpiredSessions(-time.Second)

	app.withSession("returning-session", func(sess *Session) {
		if n := len(sess.Screen.Solved()); n != 0 {
			t.Errorf("solved after sweep = %d, want a fresh board", n)
		}
	})
}

func TestSweepIdleLimiters(t *testing.T) {
	app := testApp(t)
	active := app.getLimiter("10.0.0.1")
	app.getLimiter("10.0.0.2")
	app.getLimiter("10.0.0.3")

	app.LimiterMutex.Lock()
	app.LimiterMap["10.0.0.2"].LastSeen = time.Now().Add(-3 * time.Hour)
	app.LimiterMap["10.0.0.3"].LastSeen = time.Now().Add(-5 * time.Hour)
	app.LimiterMutex.Unlock()

	if removed := app.sweepIdleLimiters(2 * time.Hour); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if got := app.getLimiter("10.0.0.1"); got != active {
		t.Error("active client got a new limiter")
	}
	app.LimiterMutex.Lock()
	n := len(app.LimiterMap)
	app.LimiterMutex.Unlock()
	if n != 1 {
		t.Errorf("limiters = %d, want 1", n)
	}
}

func TestLimiterReuseRefreshesLastSeen(t *testing.T) {
	app := testApp(t)
	app.getLimiter("10.0.0.9")
	app.LimiterMutex.Lock()
	app.LimiterMap["10.0.0.9"].LastSeen = time.Now().Add(-3 * time.Hour)
	app.LimiterMutex.Unlock()

	app.getLimiter("10.0.0.9")
	if removed := app.sweepIdleLimiters(2 * time.Hour); removed != 0 {
		t.Errorf("removed = %d, want 0 for a client seen just now", removed)
	}
}

func TestRunSessionJanitorStops(t *testing.T) {
	app := testApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.runSessionJanitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}

	// A non-positive interval returns immediately.
	app.runSessionJanitor(context.Background(), 0)
}

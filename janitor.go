package main

import (
	"context"
	"time"

	"github.com/samber/lo"
)

// sweepExpiredSessions unmounts sessions idle for longer than maxAge and
// returns how many were removed.
func (app *App) sweepExpiredSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	expired := lo.Keys(lo.PickBy(app.Sessions, func(_ string, sess *Session) bool {
		return sess.LastAccessTime.Before(cutoff)
	}))
	for _, id := range expired {
		delete(app.Sessions, id)
		logDebug("Removed idle session: %s", id)
	}
	if len(expired) > 0 {
		logInfo("Session sweep removed %d idle sessions, %d remain", len(expired), len(app.Sessions))
	}
	return len(expired)
}

// sweepIdleLimiters drops rate limiters of clients not seen for maxAge and
// returns how many were removed.
func (app *App) sweepIdleLimiters(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()

	idle := lo.Keys(lo.PickBy(app.LimiterMap, func(_ string, cl *clientLimiter) bool {
		return cl.LastSeen.Before(cutoff)
	}))
	for _, key := range idle {
		delete(app.LimiterMap, key)
	}
	if len(idle) > 0 {
		logDebug("Limiter sweep removed %d idle clients, %d remain", len(idle), len(app.LimiterMap))
	}
	return len(idle)
}

// runSessionJanitor sweeps idle sessions and rate limiters every interval
// until ctx is done.
func (app *App) runSessionJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		logWarn("Session sweep disabled (interval %v)", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.sweepExpiredSessions(app.Config.SessionTimeout)
			app.sweepIdleLimiters(app.Config.SessionTimeout)
		}
	}
}

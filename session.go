package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riddlegrid/internal/puzzle"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < minSessionIDLen {
		sessionID = uuid.NewString()
		app.setSessionCookie(c, sessionID)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

func (app *App) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", app.Config.IsProduction, true)
}

// withSession runs fn on the session's state under the session lock, mounting
// a fresh screen when the session has none.
func (app *App) withSession(sessionID string, fn func(sess *Session)) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	sess, exists := app.Sessions[sessionID]
	if !exists {
		logInfo("Mounting new board for session: %s", sessionID)
		sess = app.mountLocked(sessionID)
	}
	sess.LastAccessTime = time.Now()
	fn(sess)
}

// remount discards the session's screen and mounts an empty one.
func (app *App) remount(sessionID string) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	delete(app.Sessions, sessionID)
	app.mountLocked(sessionID)
	logInfo("Remounted board for session: %s", sessionID)
}

// mountLocked must be called with SessionMutex held.
func (app *App) mountLocked(sessionID string) *Session {
	screen, err := puzzle.NewScreen(app.Deck.Riddles, app.completionCallback(sessionID))
	if err != nil {
		// The deck is validated at startup.
		panic(err)
	}
	sess := &Session{Screen: screen, LastAccessTime: time.Now()}
	app.Sessions[sessionID] = sess
	return sess
}

// completionCallback is the parent hand-off invoked when a session confirms
// the completion overlay.
func (app *App) completionCallback(sessionID string) func() {
	return func() {
		n := app.Completions.Add(1)
		logInfo("Session %s confirmed completion (total completions: %d)", sessionID, n)
	}
}

func (app *App) sessionCount() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.Sessions)
}

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riddlegrid/internal/puzzle"
)

// homeHandler renders the full page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	var view BoardView
	app.withSession(sessionID, func(sess *Session) {
		view = app.boardView(sess)
	})
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": app.Deck.Title,
		"board": view,
	})
}

// boardHandler renders the board fragment.
func (app *App) boardHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	var view BoardView
	app.withSession(sessionID, func(sess *Session) {
		view = app.boardView(sess)
	})
	c.HTML(http.StatusOK, "board", view)
}

// selectTileHandler opens the riddle behind a locked tile.
func (app *App) selectTileHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	index, ok := tileIndex(c)
	if !ok {
		app.respond(c, sessionID, http.StatusBadRequest, ErrorInvalidTile)
		return
	}

	status, errMsg := http.StatusOK, ""
	app.withSession(sessionID, func(sess *Session) {
		opened, err := sess.Screen.SelectTile(index)
		if err != nil {
			status, errMsg = statusFor(err)
			return
		}
		if opened {
			logDebug("Session %s opened tile %d", sessionID, index)
		}
	})
	app.respond(c, sessionID, status, errMsg)
}

// answerHandler submits an answer for the open riddle.
func (app *App) answerHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	index, ok := tileIndex(c)
	if !ok {
		app.respond(c, sessionID, http.StatusBadRequest, ErrorInvalidTile)
		return
	}
	answer := c.PostForm("answer")

	status, errMsg := http.StatusOK, ""
	app.withSession(sessionID, func(sess *Session) {
		verdict, err := sess.Screen.SubmitAnswer(index, answer)
		if err != nil {
			status, errMsg = statusFor(err)
			return
		}
		sess.Notice = noticeFor(verdict)
		switch {
		case verdict.Complete:
			logInfo("[request_id=%s] Session %s solved the last tile", requestID(c), sessionID)
		case verdict.Correct:
			logInfo("[request_id=%s] Session %s solved tile %d (%s)", requestID(c), sessionID, index, sess.Screen.Progress().Label())
		default:
			logDebug("Session %s answered tile %d incorrectly", sessionID, index)
		}
	})
	app.respond(c, sessionID, status, errMsg)
}

// closeDialogHandler abandons the open riddle.
func (app *App) closeDialogHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	app.withSession(sessionID, func(sess *Session) {
		sess.Screen.CloseDialog()
	})
	app.respond(c, sessionID, http.StatusOK, "")
}

// continueHandler confirms the completion overlay and hands off to NextURL.
func (app *App) continueHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	var confirmErr error
	app.withSession(sessionID, func(sess *Session) {
		_, confirmErr = sess.Screen.Confirm()
	})
	if confirmErr != nil {
		status, errMsg := statusFor(confirmErr)
		app.respond(c, sessionID, status, errMsg)
		return
	}

	if isHTMX(c) {
		c.Header("HX-Redirect", app.Config.NextURL)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, app.Config.NextURL)
}

// newGameHandler mounts an empty board, optionally under a new session ID.
func (app *App) newGameHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	if c.Query("reset") == "1" {
		app.SessionMutex.Lock()
		delete(app.Sessions, sessionID)
		app.SessionMutex.Unlock()

		sessionID = uuid.NewString()
		app.setSessionCookie(c, sessionID)
		logInfo("Created new session ID: %s", sessionID)
	}
	app.remount(sessionID)
	app.respond(c, sessionID, http.StatusOK, "")
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"env":              map[bool]string{true: "production", false: "development"}[app.Config.IsProduction],
		"riddles_loaded":   len(app.Deck.Riddles),
		"distinct_answers": len(app.Deck.Answers()),
		"active_sessions":  app.sessionCount(),
		"completions":      app.Completions.Load(),
		"uptime":           formatUptime(time.Since(app.StartTime)),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}

// respond renders the board fragment for htmx requests and redirects plain
// form posts back to the page. errMsg is sent as an HX-Trigger server_error.
func (app *App) respond(c *gin.Context, sessionID string, status int, errMsg string) {
	if !isHTMX(c) {
		if status != http.StatusOK {
			c.String(status, errMsg)
			return
		}
		c.Redirect(http.StatusSeeOther, RouteHome)
		return
	}

	if errMsg != "" {
		payload := map[string]string{"server_error": errMsg}
		if b, err := json.Marshal(payload); err == nil {
			c.Header("HX-Trigger", string(b))
		} else {
			logWarn("Failed to marshal HX-Trigger payload: %v", err)
		}
	}
	var view BoardView
	app.withSession(sessionID, func(sess *Session) {
		view = app.boardView(sess)
	})
	c.HTML(status, "board", view)
}

func tileIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		logWarn("Invalid tile index %q", c.Param("index"))
		return 0, false
	}
	return index, true
}

// statusFor maps screen errors to an HTTP status and a user message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, puzzle.ErrTileOutOfRange):
		return http.StatusBadRequest, ErrorInvalidTile
	case errors.Is(err, puzzle.ErrDialogNotOpen):
		return http.StatusConflict, ErrorNoOpenRiddle
	case errors.Is(err, puzzle.ErrNotComplete):
		return http.StatusConflict, ErrorNotComplete
	default:
		logWarn("Unexpected board error: %v", err)
		return http.StatusInternalServerError, err.Error()
	}
}

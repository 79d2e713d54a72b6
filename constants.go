package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
	minSessionIDLen   = 10
)

// Route constants
const (
	RouteHome        = "/"
	RouteBoard       = "/board"
	RouteSelectTile  = "/tiles/:index"
	RouteAnswer      = "/tiles/:index/answer"
	RouteCloseDialog = "/dialog/close"
	RouteContinue    = "/continue"
	RouteNewGame     = "/new-game"
	RouteHealthz     = "/healthz"
)

// User-facing messages
const (
	MessageWrongAnswer = "Not quite. Try again!"
	MessageNearAnswer  = "So close! Check your spelling."
	ErrorInvalidTile   = "That tile does not exist."
	ErrorNoOpenRiddle  = "That riddle is no longer open."
	ErrorNotComplete   = "Solve every tile first."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string

package main

import (
	"time"

	"golang.org/x/time/rate"

	"riddlegrid/internal/puzzle"
)

// clientLimiter is the token bucket of one client and when it was last used.
type clientLimiter struct {
	Limiter  *rate.Limiter
	LastSeen time.Time
}

// Session is one mounted puzzle screen bound to a browser cookie.
type Session struct {
	Screen         *puzzle.Screen
	Notice         Notice // Shown on the next render, then cleared
	LastAccessTime time.Time
}

// Notice is the feedback line inside the riddle dialog.
type Notice struct {
	Text string
	Near bool
}

// BoardView is the template data for the "board" fragment.
type BoardView struct {
	Title           string
	Subtitle        string
	ImageURL        string
	BackgroundSize  string
	Phase           string
	Tiles           []TileView
	Progress        puzzle.Progress
	Dialog          *DialogView
	Notice          string
	NoticeNear      bool
	Complete        bool
	Confirmed       bool
	CompleteTitle   string
	CompleteMessage string
	ContinueLabel   string
}

// TileView is one grid cell with its 1-based label and image offset.
type TileView struct {
	puzzle.Tile
	Number             int
	BackgroundPosition string
}

// DialogView is the open riddle dialog.
type DialogView struct {
	Index    int
	Number   int
	Prompt   string
	Draft    string
	Attempts int
	Final    bool
}

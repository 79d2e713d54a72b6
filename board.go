package main

import (
	"github.com/samber/lo"

	"riddlegrid/internal/puzzle"
)

// boardView builds the template data for a session and consumes its notice.
func (app *App) boardView(sess *Session) BoardView {
	screen := sess.Screen
	grid := screen.Grid()
	state := screen.State()

	view := BoardView{
		Title:           app.Deck.Title,
		Subtitle:        app.Deck.Subtitle,
		ImageURL:        app.Deck.ImageURL,
		BackgroundSize:  grid.BackgroundSize(),
		Phase:           state.Phase.String(),
		Progress:        screen.Progress(),
		Complete:        state.Phase == puzzle.PhaseComplete,
		Confirmed:       screen.Confirmed(),
		CompleteTitle:   app.Deck.CompleteTitle,
		CompleteMessage: app.Deck.CompleteMessage,
		ContinueLabel:   app.Deck.ContinueLabel,
	}

	tiles := screen.Tiles()
	view.Tiles = lo.Map(tiles, func(t puzzle.Tile, _ int) TileView {
		return TileView{
			Tile:               t,
			Number:             t.Index + 1,
			BackgroundPosition: grid.BackgroundPosition(t.Index),
		}
	})

	if d, ok := screen.Dialog(); ok {
		view.Dialog = &DialogView{
			Index:    d.Index,
			Number:   d.Index + 1,
			Prompt:   d.Riddle.Prompt,
			Draft:    d.Draft,
			Attempts: d.Attempts,
			Final:    tiles[d.Index].Final,
		}
		view.Notice = sess.Notice.Text
		view.NoticeNear = sess.Notice.Near
	}
	sess.Notice = Notice{}
	return view
}

// noticeFor turns a wrong-answer verdict into dialog feedback.
func noticeFor(v puzzle.Verdict) Notice {
	if v.Correct {
		return Notice{}
	}
	if v.Near {
		return Notice{Text: MessageNearAnswer, Near: true}
	}
	return Notice{Text: MessageWrongAnswer}
}

package session

import (
	"fmt"

	"github.com/catnip-games/omas-adventure/internal/core"
)

// Render draws the active screen into dst. Running and Finish draw the
// world underneath their overlays; the other screens own the whole grid.
func (s *Session) Render(dst *core.Screen) {
	switch s.screen {
	case ScreenTitle:
		s.renderTitle(dst)
	case ScreenRunning:
		s.game.Render(dst)
		s.renderNotice(dst)
	case ScreenFinish:
		s.game.Render(dst)
		s.renderFinish(dst)
	case ScreenNameEntry:
		s.renderNameEntry(dst)
	case ScreenGameOver:
		s.renderGameOver(dst)
	}
}

func (s *Session) renderTitle(dst *core.Screen) {
	dst.Clear()
	top := dst.Height()/2 - 7
	if top < 0 {
		top = 0
	}

	drawCentered(dst, top, "OMA'S ADVENTURE", core.ColorOrange)
	dst.DrawTextCentered(top+1, "guide the cats home to bed")

	left := (dst.Width() - 40) / 2
	if left < 0 {
		left = 0
	}
	dst.DrawText(left, top+4, "Arrows / WASD  walk      W / Up   jump")
	dst.DrawText(left, top+5, "Space          attack    X / Tab  switch")

	drawCentered(dst, top+8, "Shoogie pounds. Florence chases plants.", core.ColorGray)
	drawCentered(dst, top+9, "Sue double-jumps on a treat diet.", core.ColorGray)

	dst.DrawTextCentered(top+12, "Enter: start   Tab: high scores   Q: quit")
}

func (s *Session) renderNotice(dst *core.Screen) {
	if s.noticeFrames <= 0 {
		return
	}
	drawCentered(dst, 2, s.notice, core.ColorBrightYellow)
}

func (s *Session) renderFinish(dst *core.Screen) {
	qualifies := s.store != nil && s.store.Qualifies(s.game.TotalScore())

	const boxW = 42
	boxH := 8
	if qualifies {
		boxH = 9
	}
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH)

	title := fmt.Sprintf("Round %d complete!", s.game.Round())
	dst.DrawTextWithColor(x+(boxW-len(title))/2, y+1, title, core.ColorBrightGreen)

	dst.DrawText(x+3, y+3, fmt.Sprintf("Round score: %d", s.game.LastRoundScore()))
	dst.DrawText(x+3, y+4, fmt.Sprintf("Total score: %d", s.game.TotalScore()))
	dst.DrawText(x+3, y+5, fmt.Sprintf("Treats:      %d", s.game.TreatsCollected()))
	if qualifies {
		dst.DrawTextWithColor(x+3, y+6, "Potential high score!", core.ColorBrightYellow)
	}
	dst.DrawText(x+3, y+boxH-2, "Enter: next round   Esc: title")
}

func (s *Session) renderNameEntry(dst *core.Screen) {
	dst.Clear()
	top := dst.Height()/2 - 4
	if top < 1 {
		top = 1
	}

	drawCentered(dst, top, "NEW HIGH SCORE!", core.ColorBrightYellow)
	dst.DrawTextCentered(top+2, fmt.Sprintf("Final score: %d", s.game.FinalScore()))
	dst.DrawTextCentered(top+4, "Enter your name:")

	blink := s.game.Config().Session.CursorBlinkFrames
	cursor := " "
	if blink <= 0 || (s.blinkTick/blink)%2 == 0 {
		cursor = "_"
	}
	drawCentered(dst, top+5, string(s.nameBuf)+cursor, core.ColorBrightCyan)

	dst.DrawTextCentered(top+7, "Enter: save   Esc: skip")
}

func (s *Session) renderGameOver(dst *core.Screen) {
	dst.Clear()
	h := dst.Height()
	top := h/2 - 5
	if top < 1 {
		top = 1
	}

	drawCentered(dst, top, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(top+2, fmt.Sprintf("Final score: %d", s.game.FinalScore()))
	dst.DrawTextCentered(top+3, fmt.Sprintf("Reached round %d", s.game.Round()))
	if s.madeTop {
		drawCentered(dst, top+5, "New top-10 score!", core.ColorBrightYellow)
	}

	s.renderChase(dst, h-3)
	dst.DrawTextCentered(h-1, "Enter: title   Q: quit")
}

// renderChase scrolls the three cats after an escaping mouse along the
// bottom of the game-over screen.
func (s *Session) renderChase(dst *core.Screen, y int) {
	span := dst.Width() + 24
	base := (s.overTick/2)%span - 12

	dst.SetWithColor(base+12, y, 'o', core.ColorGray)
	dst.SetWithColor(base+11, y, '~', core.ColorGray)

	dst.SetWithColor(base+8, y, '@', core.ColorBrightYellow)
	dst.SetWithColor(base+4, y, '@', core.ColorOrange)
	dst.SetWithColor(base, y, '@', core.ColorBrightWhite)
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextWithColor(x, y, text, c)
}

// Package session wraps one game run in the outer screen machine: title,
// gameplay, round-complete transition, high-score name entry, and game
// over. It owns when runs start and advance, when scores are saved, and
// which analytics events fire.
package session

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/catnip-games/omas-adventure/internal/analytics"
	"github.com/catnip-games/omas-adventure/internal/config"
	"github.com/catnip-games/omas-adventure/internal/core"
	"github.com/catnip-games/omas-adventure/internal/game"
)

// Screen identifies which outer screen is active.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenRunning
	ScreenFinish
	ScreenNameEntry
	ScreenGameOver
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "Title"
	case ScreenRunning:
		return "Running"
	case ScreenFinish:
		return "Finish"
	case ScreenNameEntry:
		return "NameEntry"
	case ScreenGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Engine is the simulation surface the session drives. *game.Game
// implements it.
type Engine interface {
	Reset(core.RuntimeConfig)
	Step(core.InputFrame) game.StepResult
	AdvanceRound()
	Render(*core.Screen)
	Config() config.GameConfig
	Round() int
	FinalScore() int
	TotalScore() int
	LastRoundScore() int
	TreatsCollected() int
}

var _ Engine = (*game.Game)(nil)

// ScoreStore is the slice of the scoreboard the session needs. A nil
// store disables high-score entry without touching the rest of the flow.
type ScoreStore interface {
	Qualifies(score int) bool
	Save(name string, score, round int) (bool, error)
}

// anonymousName stands in when the player skips or blanks name entry.
const anonymousName = "Anonymous"

// Session is the outer loop around a Game. It is stepped once per frame
// by the host and is not safe for concurrent use.
type Session struct {
	runtime core.RuntimeConfig
	game    Engine
	store   ScoreStore
	rec     analytics.Recorder

	screen Screen
	quit   bool

	// Unlock toast shown over gameplay.
	notice       string
	noticeFrames int

	// Name entry state.
	nameBuf   []rune
	blinkTick int
	madeTop   bool

	// Drives the game-over chase strip.
	overTick int
}

// New creates a session around a fresh game. store and rec may be nil;
// a nil recorder discards events.
func New(runtime core.RuntimeConfig, store ScoreStore, rec analytics.Recorder) *Session {
	return NewWithEngine(runtime, game.New(), store, rec)
}

// NewWithEngine creates a session around the given engine.
func NewWithEngine(runtime core.RuntimeConfig, eng Engine, store ScoreStore, rec analytics.Recorder) *Session {
	if rec == nil {
		rec = analytics.Discard{}
	}
	return &Session{
		runtime: runtime,
		game:    eng,
		store:   store,
		rec:     rec,
		screen:  ScreenTitle,
	}
}

// CurrentScreen reports the active screen. The host uses it to pick the
// input mode: NameEntry collects text, everything else collects actions.
func (s *Session) CurrentScreen() Screen {
	return s.screen
}

// Done reports whether the player asked to leave the program.
func (s *Session) Done() bool {
	return s.quit
}

// Step advances the session one frame with the given input.
func (s *Session) Step(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.quit = true
		return
	}
	switch s.screen {
	case ScreenTitle:
		s.stepTitle(in)
	case ScreenRunning:
		s.stepRunning(in)
	case ScreenFinish:
		s.stepFinish(in)
	case ScreenNameEntry:
		s.stepNameEntry(in)
	case ScreenGameOver:
		s.stepGameOver(in)
	}
}

func (s *Session) stepTitle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionAttack):
		s.startRun()
	case in.Has(core.ActionBack):
		s.quit = true
	}
}

// startRun begins a fresh run. A zero configured seed means every run
// rolls its own; an explicit seed replays the same session each time.
func (s *Session) startRun() {
	rt := s.runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	s.game.Reset(rt)
	s.rec.Record(analytics.NewGameStarted(s.game.Round()))
	s.notice = ""
	s.noticeFrames = 0
	s.madeTop = false
	s.screen = ScreenRunning
}

func (s *Session) stepRunning(in core.InputFrame) {
	res := s.game.Step(in)

	for _, sw := range res.Switches {
		s.rec.Record(analytics.NewCharacterSwitched(string(sw.From), string(sw.To)))
	}
	for _, name := range res.Unlocks {
		s.notice = fmt.Sprintf("%s unlocked! Press X to switch cats", name)
		s.noticeFrames = s.game.Config().Session.NotificationFrames
	}
	if s.noticeFrames > 0 {
		s.noticeFrames--
	}

	switch {
	case res.RoundComplete:
		s.screen = ScreenFinish
	case res.State.GameOver:
		final := s.game.FinalScore()
		s.rec.Record(analytics.NewGameOver(final, s.game.Round()))
		if s.store != nil && s.store.Qualifies(final) {
			s.nameBuf = s.nameBuf[:0]
			s.blinkTick = 0
			s.screen = ScreenNameEntry
		} else {
			s.enterGameOver()
		}
	}
}

func (s *Session) stepFinish(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm):
		s.rec.Record(analytics.NewLevelCompleted(
			s.game.Round(),
			s.game.LastRoundScore(),
			s.game.TotalScore(),
			s.game.TreatsCollected(),
		))
		s.game.AdvanceRound()
		s.screen = ScreenRunning
	case in.Has(core.ActionBack):
		// Abandoning at the transition keeps the run unsaved.
		s.screen = ScreenTitle
	}
}

func (s *Session) stepNameEntry(in core.InputFrame) {
	s.blinkTick++

	limit := s.game.Config().Session.NameLimit
	for _, r := range in.Runes {
		if len(s.nameBuf) < limit && unicode.IsPrint(r) {
			s.nameBuf = append(s.nameBuf, r)
		}
	}

	switch {
	case in.Has(core.ActionBackspace):
		if len(s.nameBuf) > 0 {
			s.nameBuf = s.nameBuf[:len(s.nameBuf)-1]
		}
	case in.Has(core.ActionConfirm):
		s.saveScore(strings.TrimSpace(string(s.nameBuf)))
		s.enterGameOver()
	case in.Has(core.ActionBack):
		s.saveScore("")
		s.enterGameOver()
	}
}

func (s *Session) stepGameOver(in core.InputFrame) {
	s.overTick++
	switch {
	case in.Has(core.ActionConfirm):
		s.screen = ScreenTitle
	case in.Has(core.ActionBack):
		s.quit = true
	}
}

// saveScore writes the finished run under name, falling back to the
// anonymous name when empty. A failed save degrades to an unsaved score.
func (s *Session) saveScore(name string) {
	if name == "" {
		name = anonymousName
	}
	if s.store == nil {
		return
	}
	made, err := s.store.Save(name, s.game.FinalScore(), s.game.Round())
	if err != nil {
		return
	}
	s.madeTop = made
}

func (s *Session) enterGameOver() {
	s.overTick = 0
	s.screen = ScreenGameOver
}

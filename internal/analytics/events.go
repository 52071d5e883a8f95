// Package analytics records gameplay events as JSON lines on a local
// spool. Recording is fire-and-forget: a full buffer drops the event and
// the game loop never waits on a write.
package analytics

import "time"

// Event is one analytics record. Implementations are flat structs that
// marshal to a single JSON object.
type Event interface {
	EventName() string
}

// GameStarted marks the beginning of a run.
type GameStarted struct {
	Name          string `json:"event"`
	Timestamp     string `json:"timestamp"`
	StartingRound int    `json:"starting_round"`
}

func (GameStarted) EventName() string { return "game_started" }

// NewGameStarted builds a game_started event for a run beginning at the
// given round.
func NewGameStarted(startingRound int) GameStarted {
	return GameStarted{Name: "game_started", Timestamp: stamp(), StartingRound: startingRound}
}

// CharacterSwitched records an active-cat change, both manual switches
// and pickup auto-switches.
type CharacterSwitched struct {
	Name          string `json:"event"`
	Timestamp     string `json:"timestamp"`
	FromCharacter string `json:"from_character"`
	ToCharacter   string `json:"to_character"`
}

func (CharacterSwitched) EventName() string { return "character_switched" }

// NewCharacterSwitched builds a character_switched event.
func NewCharacterSwitched(from, to string) CharacterSwitched {
	return CharacterSwitched{
		Name:          "character_switched",
		Timestamp:     stamp(),
		FromCharacter: from,
		ToCharacter:   to,
	}
}

// LevelCompleted records a finished round at the moment the player
// chooses to continue.
type LevelCompleted struct {
	Name            string `json:"event"`
	Timestamp       string `json:"timestamp"`
	RoundCompleted  int    `json:"round_completed"`
	ScoreEarned     int    `json:"score_earned"`
	TotalScore      int    `json:"total_score"`
	TreatsCollected int    `json:"treats_collected"`
}

func (LevelCompleted) EventName() string { return "level_completed" }

// NewLevelCompleted builds a level_completed event. scoreEarned is the
// round's take including the completion bonus.
func NewLevelCompleted(round, scoreEarned, totalScore, treats int) LevelCompleted {
	return LevelCompleted{
		Name:            "level_completed",
		Timestamp:       stamp(),
		RoundCompleted:  round,
		ScoreEarned:     scoreEarned,
		TotalScore:      totalScore,
		TreatsCollected: treats,
	}
}

// GameOver records the end of a run.
type GameOver struct {
	Name         string `json:"event"`
	Timestamp    string `json:"timestamp"`
	FinalScore   int    `json:"final_score"`
	RoundReached int    `json:"round_reached"`
}

func (GameOver) EventName() string { return "game_over" }

// NewGameOver builds a game_over event.
func NewGameOver(finalScore, roundReached int) GameOver {
	return GameOver{
		Name:         "game_over",
		Timestamp:    stamp(),
		FinalScore:   finalScore,
		RoundReached: roundReached,
	}
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Package dragon implements the Pocket Dragon game state machine.
//
// All transitions are plain functions from a State value to a new State value.
// Nothing in this package performs I/O or scheduling; the only nondeterminism is
// the clue regeneration interval, drawn from an injectable Source.
package dragon

import "github.com/vovakirdan/pocket-dragon/internal/difficulty"

// Game rules constants.
const (
	FeedThreshold    = 30 // Feeding allowed when the feed timer is at or below this
	GeneralClueCost  = 1
	SpecificClueCost = 2
	InitialClues     = 3
	ClueRegenMin     = 15 // Seconds, inclusive
	ClueRegenMax     = 20 // Seconds, inclusive
	TimePointsPeriod = 10 // One time point per this many remaining seconds
)

// Feed timer values that raise an alert when reached exactly.
const (
	alertTier1At = 30
	alertTier2At = 20
	alertTier3At = 10
)

// Result is the terminal outcome of a game. NoResult means still in progress.
type Result int

const (
	NoResult Result = iota
	Won
	Lost
)

// IsWon reports whether the result is a win.
func (r Result) IsWon() bool {
	return r == Won
}

// IsOver reports whether the game has reached a terminal state.
func (r Result) IsOver() bool {
	return r == Won || r == Lost
}

// Heading returns the dialog heading for the result.
func (r Result) Heading() string {
	switch r {
	case Won:
		return "You Won!"
	case Lost:
		return "Oh noes!"
	default:
		return ""
	}
}

// Text returns the dialog body for the result.
func (r Result) Text() string {
	switch r {
	case Won:
		return "Congratulations on successfully helping your Dragon find a happy life!"
	case Lost:
		return "Unfortunately, you didn't do so well this time…"
	default:
		return ""
	}
}

// ButtonLabel returns the label of the dialog's dismiss button.
func (r Result) ButtonLabel() string {
	switch r {
	case Won:
		return "Yay!"
	case Lost:
		return "Try again!"
	default:
		return ""
	}
}

// String returns a short name for the result.
func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "none"
	}
}

// Alert is the side signal emitted by Tick when the feed timer reaches a warning value.
type Alert int

const (
	AlertNone  Alert = iota
	AlertTier1       // Feed timer reached 30
	AlertTier2       // Feed timer reached 20
	AlertTier3       // Feed timer reached 10
)

// Repeats returns how many times the alert sound should ring.
func (a Alert) Repeats() int {
	switch a {
	case AlertTier1:
		return 1
	case AlertTier2:
		return 2
	case AlertTier3:
		return 3
	default:
		return 0
	}
}

// State is the complete game state. It is a value type: transitions return a
// modified copy and never touch their input.
type State struct {
	Running               bool
	Difficulty            difficulty.Config
	GameTimer             int // Seconds remaining, never below 0
	FeedTimer             int // Seconds remaining, never below 0
	ClueTimer             int // Seconds until next clue; 0 only before the first start
	SuccessesUntilVictory int
	RemainingClues        int
	Result                Result
}

// New creates a fresh, non-running state for the given tier.
func New(d difficulty.Config) State {
	return State{
		Running:               false,
		Difficulty:            d,
		GameTimer:             d.InitialGameTimer,
		FeedTimer:             d.InitialFeedTimer,
		ClueTimer:             0,
		SuccessesUntilVictory: d.GoalNumberOfSuccesses,
		RemainingClues:        InitialClues,
		Result:                NoResult,
	}
}

// NewDefault creates a fresh state on the easy tier.
func NewDefault() State {
	return New(difficulty.Easy)
}

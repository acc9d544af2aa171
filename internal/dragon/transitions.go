package dragon

import "github.com/vovakirdan/pocket-dragon/internal/difficulty"

// Start sets the game running. A missing clue countdown is seeded from src;
// an in-flight countdown is kept so pause and resume preserve it.
// Starting a finished game does nothing.
func Start(s State, src Source) State {
	if s.Result.IsOver() {
		return s
	}
	s.Running = true
	if s.ClueTimer < 1 {
		s.ClueTimer = GenerateClueTimer(src)
	}
	return s
}

// Pause stops the game. Timer fields are left exactly as they are.
func Pause(s State) State {
	s.Running = false
	return s
}

// Toggle pauses a running game and starts a paused one.
func Toggle(s State, src Source) State {
	if s.Running {
		return Pause(s)
	}
	return Start(s, src)
}

// Reset discards all progress and returns a fresh state for the current tier.
func Reset(s State) State {
	return New(s.Difficulty)
}

// CloseResult dismisses the game-over dialog, which is the same as Reset.
func CloseResult(s State) State {
	return Reset(s)
}

// SetDifficulty replaces the state with a fresh one for d.
// It does nothing while the game is running.
func SetDifficulty(s State, d difficulty.Config) State {
	if s.Running {
		return s
	}
	return New(d)
}

// Feed inverts the feed timer against its ceiling. No-op unless feeding is allowed.
func Feed(s State) State {
	if !IsFeedingAllowed(s) {
		return s
	}
	s.FeedTimer = CalculateFeedReset(s.Difficulty.InitialFeedTimer, s.FeedTimer)
	return s
}

// LogSuccess records one success. Reaching fewer than one remaining success wins
// the game; the decremented counter is stored as is.
func LogSuccess(s State) State {
	if !s.Running {
		return s
	}
	s.SuccessesUntilVictory--
	if s.SuccessesUntilVictory < 1 {
		s.Running = false
		s.Result = Won
	}
	return s
}

// UseGeneralClue spends GeneralClueCost clues.
func UseGeneralClue(s State) State {
	if !IsGeneralClueAllowed(s) {
		return s
	}
	s.RemainingClues -= GeneralClueCost
	return s
}

// UseSpecificClue spends SpecificClueCost clues.
func UseSpecificClue(s State) State {
	if !IsSpecificClueAllowed(s) {
		return s
	}
	s.RemainingClues -= SpecificClueCost
	return s
}

// Tick advances the game by one second. All decisions read the pre-tick values.
//
// The returned Alert is AlertNone unless soundEnabled is set and the new feed
// timer equals one of the warning values exactly. At most one clue regenerates per
// tick. If either timer drops below 1 the game is lost, with both timers clamped
// to 0; regeneration is applied before that check. A state that is not running is
// returned unchanged.
func Tick(s State, soundEnabled bool, src Source) (State, Alert) {
	if !s.Running || s.Result.IsOver() {
		return s, AlertNone
	}

	gameTimer := s.GameTimer - 1
	feedTimer := s.FeedTimer - 1
	clueTimer := s.ClueTimer - 1

	alert := AlertNone
	if soundEnabled {
		alert = alertFor(feedTimer)
	}

	if clueTimer < 1 {
		s.RemainingClues++
		clueTimer = GenerateClueTimer(src)
	}
	s.ClueTimer = clueTimer

	if feedTimer < 1 || gameTimer < 1 {
		s.GameTimer = max(0, gameTimer)
		s.FeedTimer = max(0, feedTimer)
		s.Running = false
		s.Result = Lost
		return s, alert
	}

	s.GameTimer = gameTimer
	s.FeedTimer = feedTimer
	return s, alert
}

// alertFor maps a feed timer value to its alert tier.
func alertFor(feedTimer int) Alert {
	switch feedTimer {
	case alertTier1At:
		return AlertTier1
	case alertTier2At:
		return AlertTier2
	case alertTier3At:
		return AlertTier3
	default:
		return AlertNone
	}
}

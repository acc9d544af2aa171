package dragon

// IsFeedingAllowed reports whether Feed would have any effect.
func IsFeedingAllowed(s State) bool {
	return s.Running && s.FeedTimer <= FeedThreshold
}

// IsGeneralClueAllowed reports whether a general clue can be spent.
func IsGeneralClueAllowed(s State) bool {
	return s.Running && s.RemainingClues >= GeneralClueCost
}

// IsSpecificClueAllowed reports whether a specific clue can be spent.
func IsSpecificClueAllowed(s State) bool {
	return s.Running && s.RemainingClues >= SpecificClueCost
}

// CalculateFeedReset returns the feed timer after feeding: the remaining time
// inverted against the ceiling. Feeding at the ceiling yields 0.
func CalculateFeedReset(initialTimer, currentTimer int) int {
	return initialTimer - currentTimer
}

// CalculateTimePoints returns the bonus for the remaining game time,
// one point per full ten seconds.
func CalculateTimePoints(gameTimerRemaining int) int {
	if gameTimerRemaining <= 0 {
		return 0
	}
	return gameTimerRemaining / TimePointsPeriod
}

// Score is the points breakdown of a finished game.
type Score struct {
	Base int
	Time int
}

// Total returns the sum of all point components.
func (s Score) Total() int {
	return s.Base + s.Time
}

// ScoreOf returns the points earned by s. Only a won game earns points; the time
// bonus uses the game timer remaining at the moment of winning.
func ScoreOf(s State) Score {
	if !s.Result.IsWon() {
		return Score{}
	}
	return Score{
		Base: s.Difficulty.Points,
		Time: CalculateTimePoints(s.GameTimer),
	}
}

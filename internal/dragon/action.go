package dragon

// Action is a player intent, independent of any key binding.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionToggle // Start when paused, pause when running
	ActionReset
	ActionFeed
	ActionLogSuccess
	ActionGeneralClue
	ActionSpecificClue
	ActionCloseResult
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionToggle:
		return "Toggle"
	case ActionReset:
		return "Reset"
	case ActionFeed:
		return "Feed"
	case ActionLogSuccess:
		return "LogSuccess"
	case ActionGeneralClue:
		return "GeneralClue"
	case ActionSpecificClue:
		return "SpecificClue"
	case ActionCloseResult:
		return "CloseResult"
	default:
		return "Unknown"
	}
}

// Allowed reports whether a control for the action should be enabled.
// Reset is refused while running and CloseResult only applies to a finished game.
func Allowed(s State, a Action) bool {
	switch a {
	case ActionStart:
		return !s.Running && !s.Result.IsOver()
	case ActionPause:
		return s.Running
	case ActionToggle:
		return !s.Result.IsOver()
	case ActionReset:
		return !s.Running
	case ActionFeed:
		return IsFeedingAllowed(s)
	case ActionLogSuccess:
		return s.Running
	case ActionGeneralClue:
		return IsGeneralClueAllowed(s)
	case ActionSpecificClue:
		return IsSpecificClueAllowed(s)
	case ActionCloseResult:
		return s.Result.IsOver()
	default:
		return false
	}
}

// Apply performs a player action. Actions that are not allowed return s unchanged.
func Apply(s State, a Action, src Source) State {
	if !Allowed(s, a) {
		return s
	}

	switch a {
	case ActionStart:
		return Start(s, src)
	case ActionPause:
		return Pause(s)
	case ActionToggle:
		return Toggle(s, src)
	case ActionReset:
		return Reset(s)
	case ActionFeed:
		return Feed(s)
	case ActionLogSuccess:
		return LogSuccess(s)
	case ActionGeneralClue:
		return UseGeneralClue(s)
	case ActionSpecificClue:
		return UseSpecificClue(s)
	case ActionCloseResult:
		return CloseResult(s)
	}
	return s
}

package dragon

import "testing"

func TestAllowed(t *testing.T) {
	fresh := NewDefault()
	live := running()
	live.FeedTimer = 25
	over := fresh
	over.Result = Lost

	tests := []struct {
		name     string
		state    State
		action   Action
		expected bool
	}{
		{"start fresh", fresh, ActionStart, true},
		{"start running", live, ActionStart, false},
		{"start finished", over, ActionStart, false},
		{"pause running", live, ActionPause, true},
		{"pause fresh", fresh, ActionPause, false},
		{"toggle fresh", fresh, ActionToggle, true},
		{"toggle finished", over, ActionToggle, false},
		{"reset fresh", fresh, ActionReset, true},
		{"reset running", live, ActionReset, false},
		{"feed low timer", live, ActionFeed, true},
		{"feed fresh", fresh, ActionFeed, false},
		{"success running", live, ActionLogSuccess, true},
		{"success fresh", fresh, ActionLogSuccess, false},
		{"general clue", live, ActionGeneralClue, true},
		{"specific clue", live, ActionSpecificClue, true},
		{"close finished", over, ActionCloseResult, true},
		{"close in progress", live, ActionCloseResult, false},
		{"none", live, ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.state, tc.action); got != tc.expected {
				t.Errorf("Allowed(%v) = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	src := fixedSource(0)

	s := Apply(NewDefault(), ActionToggle, src)
	if !s.Running {
		t.Fatal("toggle should start the game")
	}

	// Reset is refused while running
	if got := Apply(s, ActionReset, src); got != s {
		t.Error("reset while running should be a no-op")
	}

	s = Apply(s, ActionSpecificClue, src)
	s = Apply(s, ActionGeneralClue, src)
	if s.RemainingClues != 0 {
		t.Errorf("RemainingClues = %d, expected 0", s.RemainingClues)
	}

	s.FeedTimer = 30
	s = Apply(s, ActionFeed, src)
	if s.FeedTimer != 90 {
		t.Errorf("FeedTimer = %d, expected 90", s.FeedTimer)
	}

	for i := 0; i < 3; i++ {
		s = Apply(s, ActionLogSuccess, src)
	}
	if s.Result != Won {
		t.Fatalf("Result = %v, expected won", s.Result)
	}

	s = Apply(s, ActionCloseResult, src)
	if s != NewDefault() {
		t.Errorf("close result = %+v, expected fresh state", s)
	}

	s = Apply(Apply(s, ActionStart, src), ActionPause, src)
	if s.Running {
		t.Error("pause should stop the game")
	}
}

func TestActionString(t *testing.T) {
	if ActionFeed.String() != "Feed" {
		t.Errorf("ActionFeed.String() = %q", ActionFeed.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

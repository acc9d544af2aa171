// Package difficulty holds the fixed catalog of difficulty tiers.
// Each tier fixes the win goal, timer durations and score value for one playthrough.
package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a difficulty tier.
type Name string

const (
	NameEasy   Name = "easy"
	NameMedium Name = "medium"
	NameHard   Name = "hard"
)

// ErrUnknownDifficulty is returned when a name does not match any tier.
var ErrUnknownDifficulty = errors.New("difficulty: unknown tier")

// Config describes a single difficulty tier. Values are never mutated.
type Config struct {
	Name                  Name
	GoalNumberOfSuccesses int // Successes required to win
	InitialFeedTimer      int // Feed timer ceiling in seconds
	InitialGameTimer      int // Overall time budget in seconds
	Points                int // Base score awarded on win
}

// Title returns the display label for the tier (e.g. "Easy").
func (c Config) Title() string {
	if c.Name == "" {
		return ""
	}
	s := string(c.Name)
	return strings.ToUpper(s[:1]) + s[1:]
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return string(c.Name)
}

var (
	// Easy is the default tier.
	Easy = Config{
		Name:                  NameEasy,
		GoalNumberOfSuccesses: 3,
		InitialFeedTimer:      120, // 2 minutes
		InitialGameTimer:      300, // 5 minutes
		Points:                1,
	}

	// Medium is the intermediate tier.
	Medium = Config{
		Name:                  NameMedium,
		GoalNumberOfSuccesses: 5,
		InitialFeedTimer:      120, // 2 minutes
		InitialGameTimer:      360, // 6 minutes
		Points:                3,
	}

	// Hard is the hardest tier.
	Hard = Config{
		Name:                  NameHard,
		GoalNumberOfSuccesses: 7,
		InitialFeedTimer:      120, // 2 minutes
		InitialGameTimer:      420, // 7 minutes
		Points:                8,
	}
)

// All returns the tiers in order easy, medium, hard.
// A new slice is returned on every call.
func All() []Config {
	return []Config{Easy, Medium, Hard}
}

// Index returns the position of the named tier in All, or -1.
func Index(name Name) int {
	for i, c := range All() {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ByName looks up a tier by name. Matching ignores case and surrounding spaces.
func ByName(name string) (Config, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range All() {
		if c.Name == n {
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, name)
}

// At returns the tier at position i, clamped to the catalog bounds.
func At(i int) Config {
	all := All()
	if i < 0 {
		i = 0
	}
	if i >= len(all) {
		i = len(all) - 1
	}
	return all[i]
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
	"github.com/vovakirdan/pocket-dragon/internal/dragon"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Toggle       key.Binding
	Reset        key.Binding
	Feed         key.Binding
	LogSuccess   key.Binding
	GeneralClue  key.Binding
	SpecificClue key.Binding
	Easy         key.Binding
	Medium       key.Binding
	Hard         key.Binding
	Sound        key.Binding
	Rules        key.Binding
	Results      key.Binding
	Help         key.Binding
	Close        key.Binding
	Back         key.Binding
	Screenshot   key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Feed, k.LogSuccess, k.GeneralClue, k.SpecificClue, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Feed, k.LogSuccess},
		{k.GeneralClue, k.SpecificClue},
		{k.Easy, k.Medium, k.Hard},
		{k.Sound, k.Rules, k.Results, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "s"),
			key.WithHelp("space/s", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed!"),
		),
		LogSuccess: key.NewBinding(
			key.WithKeys("l", "enter"),
			key.WithHelp("l/enter", "log success"),
		),
		GeneralClue: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "general clue"),
		),
		SpecificClue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "specific clue"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound on/off"),
		),
		Rules: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "rules"),
		),
		Results: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "results"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "more keys"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "esc", " ", "space"),
			key.WithHelp("enter/esc", "close"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter", "?", "t"),
			key.WithHelp("esc", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sync enables exactly the bindings whose action is currently allowed.
func (k *KeyMap) sync(s dragon.State) {
	over := s.Result.IsOver()

	k.Toggle.SetEnabled(dragon.Allowed(s, dragon.ActionToggle))
	k.Reset.SetEnabled(dragon.Allowed(s, dragon.ActionReset) && !over)
	k.Feed.SetEnabled(dragon.Allowed(s, dragon.ActionFeed))
	k.LogSuccess.SetEnabled(dragon.Allowed(s, dragon.ActionLogSuccess))
	k.GeneralClue.SetEnabled(dragon.Allowed(s, dragon.ActionGeneralClue))
	k.SpecificClue.SetEnabled(dragon.Allowed(s, dragon.ActionSpecificClue))
	k.Close.SetEnabled(dragon.Allowed(s, dragon.ActionCloseResult))

	// Difficulty changes are refused while running
	canPick := !s.Running && !over
	k.Easy.SetEnabled(canPick)
	k.Medium.SetEnabled(canPick)
	k.Hard.SetEnabled(canPick)
}

// difficultyFor returns the tier bound to the pressed difficulty key.
func (k KeyMap) difficultyFor(msgKey string) (difficulty.Config, bool) {
	bindings := []key.Binding{k.Easy, k.Medium, k.Hard}
	for i, b := range bindings {
		if !b.Enabled() {
			continue
		}
		for _, bk := range b.Keys() {
			if bk == msgKey {
				return difficulty.At(i), true
			}
		}
	}
	return difficulty.Config{}, false
}

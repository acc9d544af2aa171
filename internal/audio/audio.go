// Package audio plays the feed timer alerts raised by the game tick.
package audio

import (
	"io"
	"strings"
	"sync"

	"github.com/vovakirdan/pocket-dragon/internal/dragon"
)

// Alerter reacts to tick alerts. Implementations must tolerate AlertNone.
type Alerter interface {
	Alert(a dragon.Alert)
}

// Nop discards every alert.
type Nop struct{}

// Alert implements Alerter.
func (Nop) Alert(dragon.Alert) {}

// Bell rings the terminal bell once per alert tier.
// Used where no local audio device makes sense, such as SSH sessions.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Alert implements Alerter.
func (b *Bell) Alert(a dragon.Alert) {
	n := a.Repeats()
	if n == 0 || b.w == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort, a missed bell is harmless
	io.WriteString(b.w, strings.Repeat("\a", n))
}

var (
	_ Alerter = Nop{}
	_ Alerter = (*Bell)(nil)
	_ Alerter = (*SoundManager)(nil)
)

package dragon

import (
	"math"
	"math/rand"
)

// Source supplies uniform random values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Float64 implements Source.
func (f SourceFunc) Float64() float64 {
	return f()
}

// DefaultSource draws from the math/rand global generator.
var DefaultSource Source = SourceFunc(rand.Float64)

// GenerateClueTimer returns a clue regeneration interval in
// [ClueRegenMin, ClueRegenMax], computed as round(uniform(min, max)).
// The endpoints are therefore half as likely as interior values.
// A nil src falls back to DefaultSource.
func GenerateClueTimer(src Source) int {
	if src == nil {
		src = DefaultSource
	}
	v := src.Float64()*float64(ClueRegenMax-ClueRegenMin) + float64(ClueRegenMin)
	return int(math.Round(v))
}

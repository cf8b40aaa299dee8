package pwm

import (
	"fmt"
	"sort"
	"time"
)

// Rule describes one canonical pulse duration and the absolute tolerance
// accepted around it.
type Rule struct {
	// Duration is the canonical pulse length
	Duration time.Duration

	// Tolerance is the maximum accepted deviation, inclusive
	Tolerance time.Duration
}

// matches reports whether d falls within the rule's band.
func (r Rule) matches(d time.Duration) bool {
	diff := r.Duration - d
	if diff < 0 {
		diff = -diff
	}
	return diff <= r.Tolerance
}

// overlaps reports whether two bands share any duration.
func (r Rule) overlaps(o Rule) bool {
	if r.Duration > o.Duration {
		r, o = o, r
	}
	return r.Duration+r.Tolerance >= o.Duration-o.Tolerance
}

// AmbiguousDurationError indicates a pulse duration outside every
// tolerance band of the codec.
type AmbiguousDurationError struct {
	// Index is the position of the pulse within the classified sequence
	Index int

	// Duration is the unclassifiable value
	Duration time.Duration
}

func (e *AmbiguousDurationError) Error() string {
	return fmt.Sprintf("ambiguous pulse duration at index %d: %s matches no timing band",
		e.Index, e.Duration)
}

// Codec maps between symbols and pulse durations.
type Codec[T comparable] struct {
	rules []ruleEntry[T]
	byKey map[T]Rule
}

type ruleEntry[T comparable] struct {
	symbol T
	rule   Rule
}

// NewCodec builds a codec from a rule table.
//
// Rules with negative or zero durations, or overlapping bands, are a
// configuration bug and are rejected here rather than surfacing as decode
// failures later.
func NewCodec[T comparable](rules map[T]Rule) (*Codec[T], error) {
	entries := make([]ruleEntry[T], 0, len(rules))
	for symbol, rule := range rules {
		if rule.Duration <= 0 {
			return nil, fmt.Errorf("rule %v: duration must be positive, got %s", symbol, rule.Duration)
		}
		if rule.Tolerance < 0 || rule.Tolerance >= rule.Duration {
			return nil, fmt.Errorf("rule %v: tolerance %s is not within (0, %s)", symbol, rule.Tolerance, rule.Duration)
		}
		entries = append(entries, ruleEntry[T]{symbol: symbol, rule: rule})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].rule.Duration < entries[j].rule.Duration
	})

	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if a.rule.overlaps(b.rule) {
			return nil, fmt.Errorf("rules %v and %v have overlapping tolerance bands", a.symbol, b.symbol)
		}
	}

	byKey := make(map[T]Rule, len(entries))
	for _, e := range entries {
		byKey[e.symbol] = e.rule
	}
	return &Codec[T]{rules: entries, byKey: byKey}, nil
}

// Classify matches a single duration to a symbol. The returned
// AmbiguousDurationError carries index as the pulse position.
func (c *Codec[T]) Classify(d time.Duration, index int) (T, error) {
	for _, e := range c.rules {
		if e.rule.matches(d) {
			return e.symbol, nil
		}
	}
	var zero T
	return zero, &AmbiguousDurationError{Index: index, Duration: d}
}

// ClassifyAll matches every duration, failing on the first pulse that
// falls outside all bands.
func (c *Codec[T]) ClassifyAll(durations []time.Duration) ([]T, error) {
	out := make([]T, len(durations))
	for i, d := range durations {
		symbol, err := c.Classify(d, i)
		if err != nil {
			return nil, err
		}
		out[i] = symbol
	}
	return out, nil
}

// Duration returns the canonical duration for a symbol. The second return
// is false for symbols absent from the rule table.
func (c *Codec[T]) Duration(symbol T) (time.Duration, bool) {
	rule, ok := c.byKey[symbol]
	return rule.Duration, ok
}

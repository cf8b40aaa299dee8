// Package pwm classifies pulse durations against a table of canonical
// timing rules, as used by distance-coded infrared protocols.
//
// A Codec is built from a set of rules, each naming a canonical duration
// and an absolute tolerance. Classification matches a measured duration to
// the rule whose band contains it; bands are required to be pairwise
// disjoint, so every duration has at most one meaning. Band edges are
// inclusive.
//
//	codec, err := pwm.NewCodec(map[Symbol]pwm.Rule{
//	    Short: {Duration: 550 * time.Microsecond, Tolerance: 200 * time.Microsecond},
//	    Long:  {Duration: 1550 * time.Microsecond, Tolerance: 500 * time.Microsecond},
//	})
//	symbols, err := codec.ClassifyAll(durations)
//
// A duration outside every band yields an AmbiguousDurationError carrying
// the pulse index, so callers can report exactly which pulse of a capture
// was unreadable.
package pwm

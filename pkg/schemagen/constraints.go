package schemagen

import (
	"math"

	"github.com/getmockd/fixture/pkg/schema"
)

// exclusiveEpsilon nudges continuous bounds off an exclusive endpoint.
const exclusiveEpsilon = 1e-3

// containerCount picks an element count inside the declared bounds,
// defaulting to a small range so generated examples stay readable.
func (g *Generator) containerCount(minBound, maxBound *int) int {
	lo, hi := 1, 3
	if minBound != nil {
		lo = *minBound
	}
	if maxBound != nil {
		hi = *maxBound
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	if lo == hi {
		return lo
	}
	return g.faker.IntRange(lo, hi)
}

// stringValue produces a string satisfying the declared checks. Resolution
// order: format, pattern shape, field-name heuristic, length-constrained
// random letters.
func (g *Generator) stringValue(c schema.Checks, name string) string {
	if c.Format != "" {
		if v, ok := g.formatValue(c.Format); ok {
			return v
		}
	}
	if c.Pattern != "" {
		if v, ok := g.patternValue(c.Pattern, c.MinLength, c.MaxLength); ok {
			return v
		}
		// Unrecognized patterns get a generic alphanumeric candidate; the
		// validating parse is the final arbiter.
		return g.faker.AlphaNum(g.stringLength(c.MinLength, c.MaxLength))
	}
	if name != "" {
		if v, ok := g.fieldNameValue(name); ok && lengthFits(v, c.MinLength, c.MaxLength) {
			return v
		}
	}

	if c.MinLength == nil && c.MaxLength == nil {
		return g.faker.Word()
	}
	return g.faker.Letters(g.stringLength(c.MinLength, c.MaxLength))
}

func (g *Generator) stringLength(minBound, maxBound *int) int {
	lo, hi := -1, -1
	if minBound != nil {
		lo = *minBound
	}
	if maxBound != nil {
		hi = *maxBound
	}
	switch {
	case lo < 0 && hi < 0:
		lo, hi = 4, 12
	case lo < 0:
		lo = 1
		if hi < lo {
			lo = hi
		}
	case hi < 0:
		hi = lo + 8
	}
	if hi < lo {
		hi = lo
	}
	if lo == hi {
		return lo
	}
	return g.faker.IntRange(lo, hi)
}

func lengthFits(v string, minBound, maxBound *int) bool {
	if minBound != nil && len(v) < *minBound {
		return false
	}
	if maxBound != nil && len(v) > *maxBound {
		return false
	}
	return true
}

// integerValue produces an integer inside the declared bounds, defaulting to
// 0..100. Exclusive endpoints shrink the range by one; multipleOf snaps the
// draw to the nearest admissible multiple.
func (g *Generator) integerValue(c schema.Checks) int {
	lo, hi := 0, 100
	if c.Minimum != nil {
		lo = int(math.Ceil(*c.Minimum))
		if c.ExclusiveMin && float64(lo) == *c.Minimum {
			lo++
		}
	}
	if c.Maximum != nil {
		hi = int(math.Floor(*c.Maximum))
		if c.ExclusiveMax && float64(hi) == *c.Maximum {
			hi--
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	v := lo
	if lo != hi {
		v = g.faker.IntRange(lo, hi)
	}

	if c.MultipleOf != nil && *c.MultipleOf >= 1 && *c.MultipleOf == math.Trunc(*c.MultipleOf) {
		m := int(*c.MultipleOf)
		v = v / m * m
		if v < lo {
			v += m
		}
		if v > hi {
			v -= m
		}
	}
	return v
}

// numberValue produces a float inside the declared bounds, defaulting to
// 0..100. Exclusive endpoints are nudged inward by a small epsilon;
// multipleOf snaps the draw to the nearest multiple, normalizing the
// negative zero that snapping near the origin can produce.
func (g *Generator) numberValue(c schema.Checks) float64 {
	lo, hi := 0.0, 100.0
	if c.Minimum != nil {
		lo = *c.Minimum
		if c.ExclusiveMin {
			lo += exclusiveEpsilon
		}
	}
	if c.Maximum != nil {
		hi = *c.Maximum
		if c.ExclusiveMax {
			hi -= exclusiveEpsilon
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}

	v := g.faker.FloatRange(lo, hi)
	if c.MultipleOf != nil && *c.MultipleOf > 0 {
		m := *c.MultipleOf
		v = math.Round(v/m) * m
		if v < lo {
			v += m
		}
		if v > hi {
			v -= m
		}
		if v == 0 && math.Signbit(v) {
			v = 0
		}
		return v
	}
	// Two decimal places keep unconstrained floats readable.
	return math.Round(v*100) / 100
}

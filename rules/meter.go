package rules

// Meter reports whether position index (0-based) falls on a strong beat.
// It is supplied per search, so sections of different lengths or metres can
// carry their own accent pattern.
type Meter func(index int) bool

// Duple treats even positions as strong: strong, weak, strong, weak, ...
func Duple(index int) bool {
	return index%2 == 0
}

// Accents returns a Meter that cycles through pattern, e.g.
// Accents(true, false, false) for a waltz. An empty pattern falls back to Duple.
// The pattern is copied, so later changes by the caller have no effect.
func Accents(pattern ...bool) Meter {
	if len(pattern) == 0 {
		return Duple
	}
	p := make([]bool, len(pattern))
	copy(p, pattern)

	return func(index int) bool {
		if index < 0 {
			return false
		}

		return p[index%len(p)]
	}
}

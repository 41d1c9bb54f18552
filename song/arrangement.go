package song

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the arrangement as a YAML document.
func (a *Arrangement) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode arrangement: %w", err)
	}

	return enc.Close()
}

// Pairs returns the (cantus, counterpoint) note pairs in playing order, the
// shape consumed by a renderer voicing both lines.
func (a *Arrangement) Pairs() [][2]int {
	out := make([][2]int, len(a.Cantus))
	for i := range a.Cantus {
		out[i] = [2]int{a.Cantus[i], a.Counterpoint[i]}
	}

	return out
}

// SoloRanges returns the [Start, End) index ranges of solo placements.
func (a *Arrangement) SoloRanges() [][2]int {
	var out [][2]int
	for _, p := range a.Sections {
		if p.Solo {
			out = append(out, [2]int{p.Start, p.End})
		}
	}

	return out
}

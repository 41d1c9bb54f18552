package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/counterpoint/scale"
)

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <root> [mode]",
		Short: "Print the pitch classes of a key",
		Long: `Print the pitch-class set and the ascending scale of a key.

Examples:
  counterpoint scale E harmonic-minor
  counterpoint scale Bb`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := scale.Major.String()
			if len(args) == 2 {
				mode = args[1]
			}
			key, err := scale.ParseKey(args[0], mode)
			if err != nil {
				return err
			}

			base := 60 + key.Root
			notes := make([]int, 0, 8)
			for p := base; p <= base+12; p++ {
				if key.Allows(p) {
					notes = append(notes, p)
				}
			}
			printf(cmd, "%s: %s\n", key, key.PitchClasses())
			printf(cmd, "%s\n", strings.Join(scale.PitchNames(notes), " "))

			return nil
		},
	}
}

package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/counterpoint/contour"
	"github.com/katalvlaran/counterpoint/scale"
)

func newContourCmd() *cobra.Command {
	var (
		a, b    []string
		window  int
		penalty float64
		path    bool
	)
	cmd := &cobra.Command{
		Use:   "contour",
		Short: "Compare the melodic contours of two lines with DTW",
		Long: `Compute the dynamic-time-warping distance between the interval contours of
two melodies. Transposed copies have distance 0.

Examples:
  counterpoint contour --a 60,62,64 --b 64,62,60
  counterpoint contour --a C4,D4,E4,F4 --b C4,D4,D4,E4,F4 --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pa, err := scale.ParsePitches(a)
			if err != nil {
				return err
			}
			pb, err := scale.ParsePitches(b)
			if err != nil {
				return err
			}
			opts := contour.DefaultOptions()
			opts.Window = window
			opts.SlopePenalty = penalty
			opts.ReturnPath = path

			res, err := contour.Compare(pa, pb, &opts)
			if err != nil {
				return err
			}
			if math.IsInf(res.Distance, 1) {
				printf(cmd, "distance: inf (window %d too narrow)\n", window)
				return nil
			}
			printf(cmd, "distance: %g  normalized: %g\n", res.Distance, res.Normalized)
			if path {
				printf(cmd, "path: %v\n", res.Path)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&a, "a", nil, "first melody, comma separated")
	fl.StringSliceVar(&b, "b", nil, "second melody, comma separated")
	fl.IntVar(&window, "window", 0, "Sakoe-Chiba window, 0 for none")
	fl.Float64Var(&penalty, "penalty", 0, "slope penalty for non-diagonal steps")
	fl.BoolVar(&path, "path", false, "print the warping path")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

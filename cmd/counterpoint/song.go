package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/counterpoint/search"
	"github.com/katalvlaran/counterpoint/song"
)

func newSongCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "song <song.yaml>",
		Short: "Compose a full arrangement from a song file",
		Long: `Solve every section of a song file and write the arrangement as YAML.

Distinct sections are solved in parallel. Solo sections, and sections for
which no counterpoint exists, double the cantus.

Examples:
  counterpoint song hijo.yaml -o arrangement.yaml
  COUNTERPOINT_TARGET_SOLUTIONS=300 counterpoint song hijo.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSong(cmd, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the arrangement to this file instead of stdout")

	return cmd
}

// runSong loads, composes and writes one song.
func (a *app) runSong(cmd *cobra.Command, path, out string) error {
	s, err := song.Load(path)
	if err != nil {
		return err
	}

	opts := []song.Option{
		song.WithLogger(a.log),
		song.WithSearchOptions(append(a.cfg.SearchOptions(), search.WithObserver(a.observer()))...),
	}
	if s.Concurrency == 0 {
		opts = append(opts, song.WithConcurrency(a.cfg.Concurrency))
	}
	if a.collector != nil {
		opts = append(opts, song.WithRecorder(a.collector))
	}
	arr, err := song.Compose(cmd.Context(), s, opts...)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	if err := arr.Encode(w); err != nil {
		return err
	}
	if out != "" {
		printf(cmd, "wrote %s: %d notes, %d sections (run %s)\n", out, len(arr.Cantus), len(arr.Sections), arr.RunID)
	}

	return nil
}

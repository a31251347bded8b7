package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/swipecore/swipecore/engine"
	"github.com/swipecore/swipecore/internal/config"
)

func newRecognizeCmd() *cobra.Command {
	var (
		layoutPath   string
		dictPath     string
		gesturePath  string
		configPath   string
		maxCandidate int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "recognize",
		Short: "Recognize a recorded gesture against a dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lf, err := config.LoadLayout(layoutPath)
			if err != nil {
				return err
			}
			layout, err := lf.ToKeyboardLayout()
			if err != nil {
				return fmt.Errorf("invalid layout: %w", err)
			}

			raw, err := loadGesture(gesturePath)
			if err != nil {
				return err
			}

			e := engine.New()
			if ok := e.Init(layout, dictPath); !ok {
				last := e.LastError()
				return fmt.Errorf("engine init failed: %s: %s", last.Code, last.Message)
			}

			sf, err := config.LoadScoringConfig(configPath)
			if err != nil {
				return err
			}
			e.Configure(sf.Apply(engine.DefaultScoringConfig()))

			candidates := e.Recognize(raw, maxCandidate)
			if len(candidates) == 0 {
				last := e.LastError()
				slog.Warn("no candidates", "error_code", last.Code.String(), "message", last.Message)
			}

			out := cmd.OutOrStdout()
			for i, c := range candidates {
				if verbose {
					fmt.Fprintf(out, "%2d. %-16s confidence=%.4f dtw=%.4f freq=%d\n",
						i+1, c.Word, c.Confidence, c.DTWDistance, c.FrequencyScore)
				} else {
					fmt.Fprintf(out, "%2d. %-16s confidence=%.4f\n", i+1, c.Word, c.Confidence)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "path to a layout TOML file (required)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a dictionary binary file (required)")
	cmd.Flags().StringVar(&gesturePath, "gesture", "", "path to a recorded gesture JSON file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a scoring overrides TOML file (optional)")
	cmd.Flags().IntVar(&maxCandidate, "max-candidates", 8, "maximum candidates to return (1-20)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print dtw_score and frequency_score alongside confidence")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("dict")
	_ = cmd.MarkFlagRequired("gesture")

	return cmd
}

func newUpdateLayoutCmd() *cobra.Command {
	var (
		layoutPath    string
		dictPath      string
		newLayoutPath string
	)

	cmd := &cobra.Command{
		Use:   "update-layout",
		Short: "Validate that a new layout can replace an initialized engine's layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lf, err := config.LoadLayout(layoutPath)
			if err != nil {
				return err
			}
			layout, err := lf.ToKeyboardLayout()
			if err != nil {
				return fmt.Errorf("invalid layout: %w", err)
			}

			e := engine.New()
			if ok := e.Init(layout, dictPath); !ok {
				last := e.LastError()
				return fmt.Errorf("engine init failed: %s: %s", last.Code, last.Message)
			}

			newLf, err := config.LoadLayout(newLayoutPath)
			if err != nil {
				return err
			}
			newLayout, err := newLf.ToKeyboardLayout()
			if err != nil {
				return fmt.Errorf("invalid new layout: %w", err)
			}

			if ok := e.UpdateLayout(newLayout); !ok {
				last := e.LastError()
				return fmt.Errorf("update-layout rejected: %s: %s", last.Code, last.Message)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "layout updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "path to the current layout TOML file (required)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a dictionary binary file (required)")
	cmd.Flags().StringVar(&newLayoutPath, "new-layout", "", "path to the replacement layout TOML file (required)")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("dict")
	_ = cmd.MarkFlagRequired("new-layout")

	return cmd
}

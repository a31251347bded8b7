package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swipecore/swipecore/dictionary"
)

func newInspectDictCmd() *cobra.Command {
	var (
		dictPath string
		format   string
		outPath  string
		word     string
	)

	cmd := &cobra.Command{
		Use:   "inspect-dict",
		Short: "Inspect a dictionary file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := dictionary.Load(dictPath)
			if err != nil {
				return fmt.Errorf("failed to load dictionary: %w", err)
			}

			if word != "" {
				return inspectDictWord(cmd, d, word)
			}

			switch format {
			case "text", "":
				return inspectDictText(cmd, d)
			case "msgpack":
				return inspectDictMsgpack(d, outPath)
			default:
				return fmt.Errorf("unknown --format %q (want text or msgpack)", format)
			}
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a dictionary binary file (required)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or msgpack")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for --format=msgpack (default: stdout)")
	cmd.Flags().StringVar(&word, "word", "", "look up a single word instead of dumping the dictionary")
	_ = cmd.MarkFlagRequired("dict")

	return cmd
}

func inspectDictWord(cmd *cobra.Command, d dictionary.Dictionary, word string) error {
	out := cmd.OutOrStdout()
	entry, ok := d.Lookup(word)
	if !ok {
		fmt.Fprintf(out, "%s: not found\n", word)
		return nil
	}
	fmt.Fprintf(out, "%s: frequency=%d\n", entry.Word, entry.Frequency)
	return nil
}

func inspectDictText(cmd *cobra.Command, d dictionary.Dictionary) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "language_tag: %s\n", d.LanguageTag)
	fmt.Fprintf(out, "entries: %d\n", d.Len())
	fmt.Fprintf(out, "max_frequency: %d\n", d.MaxFrequency())
	return nil
}

func inspectDictMsgpack(d dictionary.Dictionary, outPath string) error {
	buf, err := dictionary.DumpDebug(d)
	if err != nil {
		return fmt.Errorf("failed to dump dictionary as msgpack: %w", err)
	}
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(buf)
		return err
	}
	return os.WriteFile(outPath, buf, 0o644)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"order-intake/internal/order"
)

type parseResult struct {
	Source string       `json:"source"`
	Draft  *order.Draft `json:"draft,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file...]",
		Short: "Print the extracted draft of each file as JSON (stdin when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return fmt.Errorf("invalid --now: %w", err)
			}
			ex := newExtractor()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)

			sources := args
			if len(sources) == 0 {
				sources = []string{"-"}
			}

			failed := 0
			for _, src := range sources {
				text, err := readSource(cmd.InOrStdin(), src)
				if err != nil {
					return err
				}

				res := parseResult{Source: src}
				draft, err := ex.Extract(text, now)
				if err != nil {
					res.Error = err.Error()
					failed++
				} else {
					res.Draft = &draft
				}
				if err := enc.Encode(res); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs could not be extracted", failed, len(sources))
			}
			return nil
		},
	}
}

func readSource(stdin io.Reader, src string) (string, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	return string(data), nil
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var failOnDefault bool

	cmd := &cobra.Command{
		Use:   "check <dir>",
		Short: "Extract every *.txt file under dir and report failures and defaulted dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.clock()
			if err != nil {
				return fmt.Errorf("invalid --now: %w", err)
			}

			files, err := corpusFiles(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .txt files under %s", args[0])
			}

			ex := newExtractor()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tRESULT\tNAME\tPICKUP\tTYPE\tITEMS")

			var failed, defaulted int
			for _, path := range files {
				rel, _ := filepath.Rel(args[0], path)

				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}

				draft, err := ex.Extract(string(data), now)
				switch {
				case err != nil:
					failed++
					fmt.Fprintf(w, "%s\tFAIL\t%v\t\t\t\n", rel, err)
				case draft.PickupDefaulted:
					defaulted++
					fmt.Fprintf(w, "%s\tDEFAULTED\t%s\t%s\t%s\t%d\n", rel, draft.CustomerName,
						draft.PickupDate()+" "+draft.PickupTime(), draft.PickupType, len(draft.Items))
				default:
					fmt.Fprintf(w, "%s\tok\t%s\t%s\t%s\t%d\n", rel, draft.CustomerName,
						draft.PickupDate()+" "+draft.PickupTime(), draft.PickupType, len(draft.Items))
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d files, %d failed, %d defaulted dates\n", len(files), failed, defaulted)

			if failed > 0 {
				return fmt.Errorf("%d files failed extraction", failed)
			}
			if failOnDefault && defaulted > 0 {
				return fmt.Errorf("%d files had no resolvable pickup date", defaulted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnDefault, "fail-on-default", false, "also fail when a pickup date had to default to now")
	return cmd
}

func corpusFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

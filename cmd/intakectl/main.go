// Command intakectl runs the order extractor outside the server so its
// heuristics can be checked against saved platform texts.
package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"order-intake/internal/order"
	"order-intake/internal/order/extractor"
	"order-intake/pkg/datenorm"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	now string
}

// clock resolves --now, falling back to the wall clock.
func (o *rootOptions) clock() (time.Time, error) {
	if o.now == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, o.now)
}

func newExtractor() order.Extractor {
	return extractor.New(datenorm.Default())
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "intakectl",
		Short:        "Order intake operator tooling",
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.now, "now", "",
		"reference time (RFC3339) used when a text has no pickup date")

	root.AddCommand(
		newParseCmd(opts),
		newCheckCmd(opts),
		newCalendarAuthCmd(),
	)
	return root
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"order-intake/pkg/gcalendar"
)

func newCalendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth [credentials.json] [token.json]",
		Short: "Authorize Google Calendar access and save an OAuth token",
		Long: "Run once on a machine with a browser. Open the printed URL, sign in, " +
			"then paste the authorization code back here.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath, tokenPath := "credentials.json", "token.json"
			if len(args) > 0 {
				credsPath = args[0]
			}
			if len(args) > 1 {
				tokenPath = args[1]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			cfg, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the shop's Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, gcalendar.AuthCodeURL(cfg))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code := strings.TrimSpace(line)
			if code == "" {
				return errors.New("no authorization code entered")
			}

			tok, err := cfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Set google_calendar.enabled and restart the API.\n", tokenPath)
			return nil
		},
	}
}

package gcalendar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"order-intake/pkg/gcalendar"
)

const desktopCredentials = `{"installed":{"client_id":"id.apps.googleusercontent.com","client_secret":"secret",` +
	`"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",` +
	`"redirect_uris":["urn:ietf:wg:oauth:2.0:oob"]}}`

func TestOAuthConfig(t *testing.T) {
	cfg, err := gcalendar.OAuthConfig([]byte(desktopCredentials))
	if err != nil {
		t.Fatalf("OAuthConfig: %v", err)
	}
	url := gcalendar.AuthCodeURL(cfg)
	if !strings.Contains(url, "access_type=offline") || !strings.Contains(url, "client_id=id.apps.googleusercontent.com") {
		t.Errorf("url = %s", url)
	}

	if _, err := gcalendar.OAuthConfig([]byte(`{}`)); err == nil {
		t.Error("expected error for empty credentials")
	}
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	expiry := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := gcalendar.SaveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: expiry}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v", info.Mode().Perm())
	}

	tok, err := gcalendar.ReadToken(path)
	if err != nil {
		t.Fatalf("ReadToken: %v", err)
	}
	if tok.RefreshToken != "r" || !tok.Expiry.Equal(expiry) {
		t.Errorf("token = %+v", tok)
	}
}

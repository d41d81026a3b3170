package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client creates pickup holds through the Google Calendar API.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON, or OAuth desktop
// credentials paired with a token file written by `intakectl calendar-auth`.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := ReadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(cfg.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ReadToken loads an OAuth token saved as JSON.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oauth credentials need a token file at %q: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

// CreateHold inserts an event covering the requested slot. The start keeps
// its own offset so the event lands at the shop's civil time.
func (c *Client) CreateHold(ctx context.Context, req HoldRequest) (Hold, error) {
	if req.Start.IsZero() {
		return Hold{}, fmt.Errorf("hold start is required")
	}
	d := req.Duration
	if d <= 0 {
		d = DefaultHoldDuration
	}
	end := req.Start.Add(d)

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       &calendar.EventDateTime{DateTime: req.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return Hold{}, fmt.Errorf("failed to create calendar hold: %w", err)
	}
	return Hold{ID: created.Id, HTMLLink: created.HtmlLink, Start: req.Start, End: end}, nil
}

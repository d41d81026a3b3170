package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgErrors "order-intake/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(409, "transition not allowed")
	if err.Error() != "transition not allowed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code != 409 || err.StatusCode != 409 {
		t.Errorf("unexpected codes: %+v", err)
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var he *pkgErrors.HTTPError
	if !errors.As(wrapped, &he) || he.StatusCode != 409 {
		t.Errorf("errors.As failed on %v", wrapped)
	}
}

func TestPredefinedErrors(t *testing.T) {
	tcs := map[string]struct {
		err  *pkgErrors.HTTPError
		want int
	}{
		"bad request":       {pkgErrors.ErrBadRequest, 400},
		"unauthorized":      {pkgErrors.ErrUnauthorized, 401},
		"not found":         {pkgErrors.ErrNotFound, 404},
		"too many requests": {pkgErrors.ErrTooManyRequests, 429},
		"internal":          {pkgErrors.ErrInternalServerError, 500},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if tc.err.StatusCode != tc.want || tc.err.Code != tc.want {
				t.Errorf("got %+v, want status %d", tc.err, tc.want)
			}
			if tc.err.Message == "" {
				t.Error("empty message")
			}
		})
	}
}

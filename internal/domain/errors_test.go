package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	cause := errors.New("429 too many requests")
	err := fmt.Errorf("plan trip: %w", UpstreamError{Service: "llm", Err: cause})

	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if IsValidation(err) || IsInternal(err) {
		t.Fatalf("unexpected classification for %v", err)
	}
	if got := err.Error(); got != "plan trip: llm call failed: 429 too many requests" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ValidationError{Field: "season", Msg: "unknown season \"Monsoon\""}, "season: unknown season \"Monsoon\""},
		{ValidationError{Field: "budget"}, "invalid budget"},
		{NotFoundError{Resource: "user"}, "user not found"},
		{ConflictError{Resource: "user", Msg: "email already registered"}, "user conflict: email already registered"},
		{UnauthorizedError{}, "unauthorized"},
		{UpstreamError{}, "upstream call failed"},
		{InternalError{}, "internal error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("%T: got %q, want %q", tc.err, got, tc.want)
		}
	}
}

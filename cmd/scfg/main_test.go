package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/benaskins/scfg/internal/codec"
	"github.com/benaskins/scfg/internal/secrets"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", secrets.ErrConfiguration), 2},
		{fmt.Errorf("wrapped: %w", secrets.ErrNotFound), 3},
		{fmt.Errorf("wrapped: %w", codec.ErrDecode), 4},
		{fmt.Errorf("wrapped: %w", codec.ErrMalformedPayload), 5},
		{fmt.Errorf("wrapped: %w", secrets.ErrUnsupported), 6},
		{fmt.Errorf("wrapped: %w", secrets.ErrBackend), 7},
		{fmt.Errorf("wrapped: %w", secrets.ErrIO), 8},
		{errors.New("something else"), 1},
	}

	for _, c := range cases {
		if got := exitCode(c.err); got != c.want {
			t.Errorf("exitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	seen := make(map[int]error)
	for _, err := range []error{
		secrets.ErrConfiguration,
		secrets.ErrNotFound,
		codec.ErrDecode,
		codec.ErrMalformedPayload,
		secrets.ErrUnsupported,
		secrets.ErrBackend,
		secrets.ErrIO,
	} {
		code := exitCode(err)
		if code == 0 {
			t.Errorf("exitCode(%v) = 0, must be non-zero", err)
		}
		if prev, ok := seen[code]; ok {
			t.Errorf("exitCode collision: %v and %v both map to %d", prev, err, code)
		}
		seen[code] = err
	}
}

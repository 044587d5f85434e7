package main

import (
	"errors"
	"io"
	"testing"

	"github.com/kwucouncil/council-api/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one step", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"two"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseSteps(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSteps: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected steps: want %d got %d", tc.want, got)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if v, err := parseVersion("1748736200"); err != nil || v != 1748736200 {
		t.Fatalf("unexpected version: %d %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version error")
	}
	if v, err := parseTarget("1748736100"); err != nil || v != 1748736100 {
		t.Fatalf("unexpected target: %d %v", v, err)
	}
	if _, err := parseTarget("latest"); err == nil {
		t.Fatalf("expected invalid target error")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	t.Parallel()

	raw := "postgres://council:pw@localhost:5432/council?sslmode=disable"
	if got := normalizeDBURL(raw, false); got != raw {
		t.Fatalf("expected url unchanged, got %s", got)
	}
	got := normalizeDBURL(raw, true)
	want := "postgres://council:pw@localhost:5432/council?disable_prepared_binary_result=yes&sslmode=disable"
	if got != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestRun_RequiresCommandAndURL(t *testing.T) {
	logger := logging.NewNop()

	if err := run(nil, logger, io.Discard); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DB_URL", "")
	if err := run([]string{"up"}, logger, io.Discard); err == nil || err.Error() != "DB_URL is required" {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

package main

import "testing"

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one step", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"all"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSteps(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse steps: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected steps: got %d want %d", got, tc.want)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1760400000"); err != nil || v != 1760400000 {
		t.Fatalf("unexpected version: %d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("42"); err != nil || v != 42 {
		t.Fatalf("unexpected target: %d err=%v", v, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestResolveMigrationsDir_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	if got != dir {
		t.Fatalf("unexpected dir: got %q want %q", got, dir)
	}
}

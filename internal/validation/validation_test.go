package validation

import (
	"context"
	"testing"
)

func TestMobileAcceptsNormalizedForms(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"9876543210", "9876543210"},
		{"+919876543210", "9876543210"},
		{"09876543210", "9876543210"},
		{" 9876543210 ", "9876543210"},
	}

	for _, tc := range cases {
		got, ok := Mobile(tc.input)
		if !ok {
			t.Fatalf("Mobile(%q): expected accept", tc.input)
		}
		if got != tc.want {
			t.Fatalf("Mobile(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMobileRejectsInvalidInputs(t *testing.T) {
	cases := []string{
		"",
		"123",
		"+91abc1234567",
		"98765432101",
		"00876543210",
		"98765 43210",
	}

	for _, input := range cases {
		if got, ok := Mobile(input); ok {
			t.Fatalf("Mobile(%q): expected reject, got %q", input, got)
		}
	}
}

func TestPANNormalizesAndAccepts(t *testing.T) {
	got, ok := PAN("abcde1234f")
	if !ok {
		t.Fatal("expected lowercase PAN to be accepted after normalization")
	}
	if got != "ABCDE1234F" {
		t.Fatalf("PAN normalized to %q, want %q", got, "ABCDE1234F")
	}
}

func TestPANRejectsInvalidShapes(t *testing.T) {
	cases := []string{
		"",
		"ABCDE12345",
		"ABCD51234F",
		"ABCDE1234FG",
		"1BCDE1234F",
	}

	for _, input := range cases {
		if got, ok := PAN(input); ok {
			t.Fatalf("PAN(%q): expected reject, got %q", input, got)
		}
	}
}

type managerRepoStub struct {
	existsActiveFn func(ctx context.Context, managerID string) (bool, error)
}

func (s managerRepoStub) ExistsActive(ctx context.Context, managerID string) (bool, error) {
	if s.existsActiveFn != nil {
		return s.existsActiveFn(ctx, managerID)
	}
	return false, nil
}

func TestManagerActiveTreatsEmptyAsNoManager(t *testing.T) {
	called := false
	repo := managerRepoStub{existsActiveFn: func(context.Context, string) (bool, error) {
		called = true
		return false, nil
	}}

	active, err := ManagerActive(context.Background(), repo, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !active {
		t.Fatal("expected empty manager id to pass the guard")
	}
	if called {
		t.Fatal("expected no repository read for an empty manager id")
	}
}

func TestManagerActiveQueriesRepository(t *testing.T) {
	repo := managerRepoStub{existsActiveFn: func(_ context.Context, managerID string) (bool, error) {
		return managerID == "m-1", nil
	}}

	active, err := ManagerActive(context.Background(), repo, "m-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !active {
		t.Fatal("expected active manager to pass the guard")
	}

	active, err = ManagerActive(context.Background(), repo, "m-2")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if active {
		t.Fatal("expected unknown manager to fail the guard")
	}
}

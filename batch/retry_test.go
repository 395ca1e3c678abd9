/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

import "testing"

func TestNormalizeAutoRetry(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"nil", nil, 0},
		{"zero", 0, 0},
		{"positive int", 3, 3},
		{"negative int", -1, 0},
		{"int64", int64(5), 5},
		{"negative int64", int64(-7), 0},
		{"uint", uint(2), 2},
		{"whole float", 4.0, 4},
		{"fractional float", 1.5, 0},
		{"negative float", -2.0, 0},
		{"float32 whole", float32(2), 2},
		{"string", "5", 0},
		{"bool", true, 0},
		{"struct", struct{}{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAutoRetry(tc.value); got != tc.want {
				t.Errorf("NormalizeAutoRetry(%v) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}
}

func TestRetryPolicyCompletesWithinBudget(t *testing.T) {
	p := newRetryPolicy(&Options{AutoRetry: 3})
	p.begin()

	// Initial attempt leaves work, two retries drain it.
	if !p.observe(4) {
		t.Fatal("expected first retry to be permitted")
	}
	if !p.observe(1) {
		t.Fatal("expected second retry to be permitted")
	}
	if p.observe(0) {
		t.Fatal("expected no retry after full completion")
	}
	if p.state != stateComplete {
		t.Errorf("state = %v, want complete", p.state)
	}
	if p.retryAttempts() != 2 {
		t.Errorf("retryAttempts = %d, want 2", p.retryAttempts())
	}
}

func TestRetryPolicyExhaustsBudget(t *testing.T) {
	p := newRetryPolicy(&Options{AutoRetry: 1})
	p.begin()

	if !p.observe(3) {
		t.Fatal("expected the single retry to be permitted")
	}
	if p.observe(2) {
		t.Fatal("expected budget exhaustion after one retry")
	}
	if p.state != stateExhausted {
		t.Errorf("state = %v, want exhausted", p.state)
	}
	if p.retryAttempts() != 1 {
		t.Errorf("retryAttempts = %d, want 1", p.retryAttempts())
	}
}

func TestRetryPolicyZeroBudget(t *testing.T) {
	p := newRetryPolicy(&Options{AutoRetry: 0})
	p.begin()

	if p.observe(5) {
		t.Fatal("expected no retry with a zero budget")
	}
	if p.state != stateExhausted {
		t.Errorf("state = %v, want exhausted", p.state)
	}
	if p.retryAttempts() != 0 {
		t.Errorf("retryAttempts = %d, want 0", p.retryAttempts())
	}
}

func TestRetryPolicyCleanFirstAttempt(t *testing.T) {
	p := newRetryPolicy(nil)
	p.begin()

	if p.observe(0) {
		t.Fatal("expected no retry when everything was processed")
	}
	if p.state != stateComplete {
		t.Errorf("state = %v, want complete", p.state)
	}
	if p.retryAttempts() != 0 {
		t.Errorf("retryAttempts = %d, want 0", p.retryAttempts())
	}
}

func TestChunk(t *testing.T) {
	if got := chunk([]int(nil), 25); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}

	entries := make([]int, 101)
	chunks := chunk(entries, 100)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 100 || len(chunks[1]) != 1 {
		t.Errorf("chunk sizes = %d, %d; want 100, 1", len(chunks[0]), len(chunks[1]))
	}

	exact := chunk(make([]int, 50), 25)
	if len(exact) != 2 || len(exact[0]) != 25 || len(exact[1]) != 25 {
		t.Errorf("unexpected chunking of exact multiple: %d chunks", len(exact))
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

// policyState tracks where a bulk invocation is in its retry lifecycle.
type policyState int

const (
	stateIdle policyState = iota
	stateAttempting
	stateComplete
	stateExhausted
)

// retryPolicy is the retry-budget state machine for one bulk invocation:
// Idle -> Attempting -> {Complete, Exhausted}. The initial call is attempt
// zero and is never counted as a retry.
type retryPolicy struct {
	budget  int
	retries int
	state   policyState
}

func newRetryPolicy(opts *Options) *retryPolicy {
	p := &retryPolicy{state: stateIdle}
	if opts != nil {
		p.budget = NormalizeAutoRetry(opts.AutoRetry)
	}
	return p
}

// begin marks the start of the initial attempt.
func (p *retryPolicy) begin() {
	p.state = stateAttempting
}

// observe records the unprocessed count left by the attempt that just
// settled and reports whether another attempt is permitted. When it returns
// true the retry is considered taken.
func (p *retryPolicy) observe(unprocessed int) bool {
	switch {
	case unprocessed == 0:
		p.state = stateComplete
		return false
	case p.retries >= p.budget:
		p.state = stateExhausted
		return false
	default:
		p.retries++
		return true
	}
}

// retryAttempts reports the number of attempts made after the initial call.
func (p *retryPolicy) retryAttempts() int {
	return p.retries
}

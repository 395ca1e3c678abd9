/*
Package errors provides semantic error types for the SingleTable library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrMissingFacet = errors.New("missing facet value")
	    ErrMalformedKey = errors.New("malformed physical key")
	    ErrUnknownIndex = errors.New("unknown index")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	// Check error type
	key, err := reg.ResolveKey("order", "primary", facets)
	if err != nil {
	    if errors.IsUnknownIndex(err) {
	        // Handle unregistered access pattern
	        return nil, fmt.Errorf("no such access pattern")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewMissingFacetError("orderID", "ORDER#{orderID}")
	err := errors.NewMalformedKeyError("USER@abc", "USER#{id}", "literal prefix mismatch")
	err := errors.NewValidationError("table", "must not be empty")

All composition errors are raised synchronously before any network call and
are never retried. The error types implement the error interface and support
wrapping, making them compatible with Go's standard error handling patterns.
*/
package errors

/*
Package batch coordinates bulk reads and writes against DynamoDB.

The Coordinator resolves logical keys through a registry, splits work into
store-sized chunks (100 keys per BatchGetItem call, 25 requests per
BatchWriteItem call), dispatches the chunks of one attempt concurrently, and
resubmits whatever the store reports as unprocessed until everything is
acknowledged or the retry budget runs out.

Basic usage:

	coord := batch.NewCoordinator(client, reg)

	res, err := coord.BatchGet(ctx, "Order", "primary", []batch.Facets{
	    {"tenantID": "t1", "orderID": "o1"},
	    {"tenantID": "t1", "orderID": "o2"},
	}, &batch.Options{AutoRetry: 3})
	if err != nil {
	    // the store rejected an attempt outright
	}
	for _, item := range res.Data {
	    // fetched items, in no particular order
	}
	for _, key := range res.Unprocessed {
	    // keys the store never acknowledged within the budget
	}

Retry semantics:

The AutoRetry option bounds how many times a partially fulfilled attempt is
resubmitted. Values are normalized permissively: negative numbers, fractional
floats, strings, and nil all collapse to zero (no retries). A store rejection
is different from partial fulfilment: it fails the whole invocation and
discards results accumulated by earlier attempts, so callers retrying at a
higher level always start from a clean slate.

Result.RetryAttempts reports how many resubmissions actually happened, which
is at most the configured budget.
*/
package batch

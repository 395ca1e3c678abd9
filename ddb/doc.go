/*
Package ddb constructs DynamoDB clients for the coordination layer.

Clients are built either from static credentials:

	client, err := ddb.NewClient(ctx, accessKey, secretKey, "us-west-2")

or from the default AWS credential chain:

	client, err := ddb.NewClientFromEnv(ctx, "us-west-2")

The returned *dynamodb.Client satisfies the batch.Client contract and is
safe for concurrent use.
*/
package ddb

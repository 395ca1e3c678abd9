/*
Package singletable is a client-side coordination layer for DynamoDB
single-table designs. It turns logical facet values into deterministic
composite keys and runs bulk reads and writes with automatic resubmission
of whatever the store leaves unprocessed.

Access patterns are declared once, either in code or from a YAML schema,
and every key the application ever sends is composed from them:

	reg := registry.New()
	reg.RegisterEntity(registry.EntityDefinition{
	    Name:  "Order",
	    Table: "app-table",
	    Indexes: map[string]registry.IndexDefinition{
	        "primary": {
	            Name:         "primary",
	            PartitionKey: registry.KeyDefinition{Attribute: "PK", Template: "TENANT#{tenantID}"},
	            SortKey:      registry.KeyDefinition{Attribute: "SK", Template: "ORDER#{orderID}"},
	        },
	    },
	})

	client, _ := ddb.NewClientFromEnv(ctx, "us-west-2")
	table := singletable.New(client, reg)

	res, err := table.BatchGet(ctx, "Order", "primary", []batch.Facets{
	    {"tenantID": "t1", "orderID": "o1"},
	}, &batch.Options{AutoRetry: 3})

Facet values are escaped before composition, so any string round-trips
through a composed key, including values containing '#'. Parsing a key
recovers exactly the facet values it was composed from.

Bulk operations split work into the store's per-call limits, dispatch the
chunks of one attempt concurrently, and resubmit unprocessed entries up to
the configured retry budget. A store rejection fails the whole call; partial
fulfilment never does.

For more information, see the documentation at https://github.com/suparena/singletable
*/
package singletable

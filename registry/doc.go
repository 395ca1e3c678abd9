/*
Package registry holds the static access-pattern configuration that maps
logical entities onto one physical DynamoDB table.

Each entity registers once, during setup, with the table it lives in and the
key templates for each of its indexes:

	reg := registry.New()
	err := reg.RegisterEntity(registry.EntityDefinition{
	    Name:  "order",
	    Table: "app-table",
	    Indexes: map[string]registry.IndexDefinition{
	        "primary": {
	            PartitionKey: registry.KeyDefinition{Attribute: "PK", Template: "TENANT#{tenantID}"},
	            SortKey:      registry.KeyDefinition{Attribute: "SK", Template: "ORDER#{orderID}"},
	        },
	    },
	})

	key, err := reg.ResolveKey("order", "primary", map[string]string{
	    "tenantID": "acme",
	    "orderID":  "o-1001",
	})

Templates are compiled and validated eagerly at registration, so resolution
never re-parses template strings. Definitions are immutable once registered;
lookups take a read lock only and are safe for concurrent use.
*/
package registry

/*
Package keys implements deterministic composition and parsing of physical
DynamoDB key strings from named facet values.

A key template mixes literal text with {facet} macros:

	c, err := keys.ParseTemplate("ORDER#{tenantID}#{orderID}")
	pk, err := c.Compose(map[string]string{
	    "tenantID": "acme",
	    "orderID":  "o-1001",
	})
	// pk == "ORDER#acme#o-1001"

	facets, err := c.Parse("ORDER#acme#o-1001")
	// facets == map[string]string{"tenantID": "acme", "orderID": "o-1001"}

Compose and Parse form a bijection on the declared facet-value tuple: facet
values containing the '#' join delimiter (or '%') are escaped before
substitution, so no two distinct tuples produce the same physical string, and
parsing a composed key always recovers the exact original values.

Composition is the sole correlation mechanism between a request key and a
chunked or retried response, which is why lossless round-tripping is treated
as a hard requirement rather than a convenience.

Composers are pure and immutable; all functions are safe for concurrent use.
*/
package keys

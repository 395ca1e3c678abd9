/*
Package schema loads entity definitions from YAML documents.

A schema document declares entities, their physical tables, and their access
patterns, so applications can keep key layout out of code:

	entities:
	  - name: Order
	    table: app-table
	    indexes:
	      primary:
	        partition:
	          attribute: PK
	          template: "TENANT#{tenantID}"
	        sort:
	          attribute: SK
	          template: "ORDER#{orderID}"
	      gsi1:
	        partition:
	          attribute: GSI1PK
	          template: "STATUS#{status}"
	        sort:
	          attribute: GSI1SK
	          template: "ORDER#{orderID}"

Load the document and apply it to a registry:

	f, err := schema.Load("schema.yaml")
	if err != nil {
	    return err
	}
	if err := f.Apply(reg); err != nil {
	    return err
	}

Parsing checks structural completeness; template syntax is checked when the
definitions are registered.
*/
package schema

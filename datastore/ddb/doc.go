/*
Package ddb provides the DynamoDB implementation of the ModelStore interface.

The storage location is a single table whose layout comes from the schema
package: the entity type is the partition key and the four document sections
are plain map attributes, stored but never indexed.

Semantics worth knowing:
  - Reads (GetModel, SearchModels) use strongly consistent mode, so a read
    issued after a successful write observes that write.
  - Create-only writes use a condition expression on the key attribute; a
    conditional check failure surfaces as an already-exists error.
  - A missing table surfaces as the distinguished location-not-found error
    on every document operation, which is what lets the registry recreate
    the table on demand.
  - CreateLocation tolerates losing a creation race; the table being already
    in use counts as success.
*/
package ddb

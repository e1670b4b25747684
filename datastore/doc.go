/*
Package datastore defines the store-client contract for the entity model
registry.

The main interface is ModelStore, which covers the storage location lifecycle
(existence check, creation) and the document operations (get, search, index,
delete). A missing storage location is always reported as a distinguished
error so the registry can recreate it on demand.

Implementations:
  - ddb: DynamoDB implementation; the storage location is a table
  - mock: in-memory implementation for testing
*/
package datastore

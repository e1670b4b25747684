/*
Package registry implements the entity model registry: list, get, create,
update, and delete over a ModelStore, with the storage location repaired on
demand.

The location lifecycle is split by operation class. Writes call EnsureExists
first, since a write against a missing location is a guaranteed failure.
Reads and deletes assume the location exists and, when the store reports it
missing, recreate it and retry exactly once; a second consecutive miss is a
fatal infrastructure error. The repair does not distinguish whether the
original miss came from a missing location or happened on a location deleted
out-of-band mid-request, so a plain GetOne against a system that has never
been written to will create the location as a side effect.

The registry never loops on repair, holds no locks across store calls, and
keeps no in-process copy of documents.
*/
package registry

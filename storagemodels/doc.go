/*
Package storagemodels defines the record and result types shared by the
stores, the registry, and the HTTP layer.

ModelRecord is the persisted shape of one entity model. The result types
(WriteResult, DeleteResult, ListResult) are the acknowledgments the registry
returns and the HTTP layer encodes.
*/
package storagemodels

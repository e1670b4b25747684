/*
Package modelregistry is a self-healing registry for entity model documents
backed by a remote document store.

An entity model describes how records of one entity type are resolved: its
attributes, resolvers, matchers, and indices. Models are validated before
they are persisted, stored one document per entity type in a single storage
location, and served over a small HTTP surface.

The storage location is created lazily and recreated transparently if it is
deleted out-of-band: writes ensure it exists before writing, while reads and
deletes repair it on demand and retry once.

Layout:
  - schema: the fixed storage-location layout
  - model: document validation
  - datastore: the store-client contract, with ddb and mock implementations
  - registry: the model operations and the location lifecycle
  - api: the HTTP request adapter
  - config, cmd/modelregistryd: settings and the server binary

Basic usage as a library:

	client, _ := ddb.NewClient(ctx, accessKey, secretKey, region)
	reg := registry.New(ddb.New(client), logger)
	res, err := reg.Create(ctx, "person", m)
*/
package modelregistry

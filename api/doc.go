/*
Package api translates HTTP requests into entity model registry operations.

The surface is small and fixed:

	GET    /models          list all models
	GET    /models/{type}   get one model
	POST   /models/{type}   create a model (create-only)
	PUT    /models/{type}   update a model (upsert)
	DELETE /models/{type}   delete a model

Anything else answers 501. Routing is a handler map keyed by verb and
whether the path names an entity type, so the table above is the whole
routing policy.

Write bodies are rejected when missing and validated before any registry
call. The pretty query option switches the response to indented JSON and
changes nothing else. Each response carries an X-Request-Id header matching
the request log entries.
*/
package api

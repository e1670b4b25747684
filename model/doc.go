/*
Package model parses and validates entity model documents before they reach
storage.

The registry treats validation as an opaque accept-or-fail step: model.New
either returns a parsed Model or a validation error with a human-readable
reason. No document that fails here is ever persisted.
*/
package model

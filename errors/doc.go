/*
Package errors defines the error taxonomy shared by the registry, the stores,
and the HTTP layer.

Errors come in matched pairs: a sentinel for errors.Is checks and a typed
error carrying context. Use the New* constructors to build errors and the Is*
helpers (or errors.Is against the sentinels) to classify them:

	if err := reg.Create(ctx, "person", body); modelerrors.IsAlreadyExists(err) {
	    // surface a conflict, no retry
	}

ErrLocationNotFound is internal to the storage contract: stores report it when
the backing location is absent, the registry repairs it, and it never reaches
a caller of the registry.
*/
package errors

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/modelregistry/errors"
	"github.com/suparena/modelregistry/model"
	"github.com/suparena/modelregistry/storagemodels"
)

// BasePath is the path prefix all model endpoints live under.
const BasePath = "/models"

// ModelRegistry is the registry surface the handler drives. Satisfied by
// *registry.Registry.
type ModelRegistry interface {
	ListAll(ctx context.Context) (*storagemodels.ListResult, error)
	GetOne(ctx context.Context, entityType string) (*storagemodels.ModelRecord, error)
	Create(ctx context.Context, entityType string, m *model.Model) (*storagemodels.WriteResult, error)
	Update(ctx context.Context, entityType string, m *model.Model) (*storagemodels.WriteResult, error)
	Delete(ctx context.Context, entityType string) (*storagemodels.DeleteResult, error)
}

// request carries the parsed inputs of one call.
type request struct {
	entityType string
	body       string
}

// operation executes one registry call and returns the response payload.
type operation func(ctx context.Context, req *request) (interface{}, error)

// routeKey identifies an operation by verb and whether the path names an
// entity type.
type routeKey struct {
	method  string
	hasType bool
}

// Handler translates HTTP requests into registry operations. Routing is a
// plain handler map: any verb and path combination without a registered
// operation is answered with 501.
type Handler struct {
	registry ModelRegistry
	log      *slog.Logger
	routes   map[routeKey]operation
}

// NewHandler builds the handler with the full route table registered.
func NewHandler(reg ModelRegistry, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		registry: reg,
		log:      log,
		routes:   make(map[routeKey]operation),
	}

	h.register(http.MethodGet, false, h.listAll)
	h.register(http.MethodGet, true, h.getOne)
	h.register(http.MethodPost, true, h.create)
	h.register(http.MethodPut, true, h.update)
	h.register(http.MethodDelete, true, h.delete)
	return h
}

func (h *Handler) register(method string, hasType bool, op operation) {
	key := routeKey{method: method, hasType: hasType}
	if _, exists := h.routes[key]; exists {
		panic(fmt.Sprintf("api: route %s hasType=%v already registered", method, hasType))
	}
	h.routes[key] = op
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	log := h.log.With("request_id", requestID, "method", r.Method, "path", r.URL.Path)

	pretty := prettyParam(r)

	entityType, ok := parsePath(r.URL.Path)
	if !ok {
		h.writeError(w, log, pretty, errors.NewNotImplementedError(r.Method, r.URL.Path))
		return
	}

	op, ok := h.routes[routeKey{method: r.Method, hasType: entityType != ""}]
	if !ok {
		h.writeError(w, log, pretty, errors.NewNotImplementedError(r.Method, r.URL.Path))
		return
	}

	body, err := readBody(r)
	if err != nil {
		h.writeError(w, log, pretty, err)
		return
	}

	payload, err := op(r.Context(), &request{entityType: entityType, body: body})
	if err != nil {
		h.writeError(w, log, pretty, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload, pretty)
	log.Info("request served", "status", http.StatusOK, "duration", time.Since(start))
}

// parsePath extracts the entity type from the request path. It returns
// ok=false for any path outside the /models tree or nested below one entity
// type.
func parsePath(path string) (entityType string, ok bool) {
	trimmed := strings.TrimSuffix(path, "/")
	if trimmed == BasePath {
		return "", true
	}
	if !strings.HasPrefix(trimmed, BasePath+"/") {
		return "", false
	}
	rest := strings.TrimPrefix(trimmed, BasePath+"/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// prettyParam reads the pretty display option. It controls output formatting
// only, never behavior. A bare ?pretty counts as true.
func prettyParam(r *http.Request) bool {
	if !r.URL.Query().Has("pretty") {
		return false
	}
	v := r.URL.Query().Get("pretty")
	return v == "" || v == "true"
}

func readBody(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return "", errors.NewValidationError("", "failed to read request body")
	}
	return string(raw), nil
}

// Operations

func (h *Handler) listAll(ctx context.Context, req *request) (interface{}, error) {
	return h.registry.ListAll(ctx)
}

func (h *Handler) getOne(ctx context.Context, req *request) (interface{}, error) {
	if err := model.ValidateEntityType(req.entityType); err != nil {
		return nil, err
	}
	return h.registry.GetOne(ctx, req.entityType)
}

func (h *Handler) create(ctx context.Context, req *request) (interface{}, error) {
	m, err := h.parseWriteRequest(req)
	if err != nil {
		return nil, err
	}
	return h.registry.Create(ctx, req.entityType, m)
}

func (h *Handler) update(ctx context.Context, req *request) (interface{}, error) {
	m, err := h.parseWriteRequest(req)
	if err != nil {
		return nil, err
	}
	return h.registry.Update(ctx, req.entityType, m)
}

func (h *Handler) delete(ctx context.Context, req *request) (interface{}, error) {
	if err := model.ValidateEntityType(req.entityType); err != nil {
		return nil, err
	}
	return h.registry.Delete(ctx, req.entityType)
}

// parseWriteRequest rejects a missing body before validation is attempted,
// then runs the body through the validator. No store call happens until both
// checks pass.
func (h *Handler) parseWriteRequest(req *request) (*model.Model, error) {
	if err := model.ValidateEntityType(req.entityType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.body) == "" {
		return nil, errors.NewValidationError("", "request body is missing")
	}
	return model.New(req.body)
}

// Response encoding

type errorBody struct {
	Error  errorDetail `json:"error"`
	Status int         `json:"status"`
}

type errorDetail struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (h *Handler) writeError(w http.ResponseWriter, log *slog.Logger, pretty bool, err error) {
	status := statusFor(err)
	body := errorBody{
		Error: errorDetail{
			Type:   typeFor(err),
			Reason: err.Error(),
		},
		Status: status,
	}
	h.writeJSON(w, status, body, pretty)

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "error", err)
	} else {
		log.Info("request rejected", "status", status, "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.IsBadInput(err):
		return http.StatusBadRequest
	case errors.IsNotImplemented(err):
		return http.StatusNotImplemented
	case errors.IsAlreadyExists(err):
		return http.StatusConflict
	case errors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func typeFor(err error) string {
	switch {
	case errors.IsBadInput(err):
		return "bad_input"
	case errors.IsNotImplemented(err):
		return "not_implemented"
	case errors.IsAlreadyExists(err):
		return "already_exists"
	case errors.IsNotFound(err):
		return "not_found"
	case errors.IsInfrastructure(err):
		return "infrastructure"
	default:
		return "internal"
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}, pretty bool) {
	var raw []byte
	var err error
	if pretty {
		raw, err = json.MarshalIndent(payload, "", "  ")
	} else {
		raw, err = json.Marshal(payload)
	}
	if err != nil {
		http.Error(w, `{"error":{"type":"internal","reason":"response encoding failed"},"status":500}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

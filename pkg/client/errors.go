package client

import (
	"encoding/json"
	"fmt"
)

// APIError is an error envelope returned by the portal inside an HTTP 200
// response. The portal does not use HTTP status codes for API-level
// failures; it wraps them in a JSON object instead.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal API error: %s (%d)", e.Message, e.Code)
}

// BadFQDNError reports an orchestrator FQDN the client refuses to talk to.
type BadFQDNError struct {
	Value  string
	Reason string
}

func (e *BadFQDNError) Error() string {
	return fmt.Sprintf("bad orchestrator FQDN %q: %s", e.Value, e.Reason)
}

// portalErrorEnvelope matches the portal's error body shape:
// {"error": {"code": ..., "message": ..., ...}}. Code and Message are
// pointers so a body that merely happens to contain an "error" key with a
// different shape is not misclassified.
type portalErrorEnvelope struct {
	Error *struct {
		Code    *int    `json:"code"`
		Message *string `json:"message"`
	} `json:"error"`
}

// classifyErrorBody inspects a response body and returns the APIError it
// carries, or nil if the body is not a portal error envelope. It is a pure
// function of the body: no shared state, safe to call concurrently.
func classifyErrorBody(body []byte) *APIError {
	var envelope portalErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Not a JSON object at the top level; error bodies always are.
		return nil
	}
	e := envelope.Error
	if e == nil || e.Code == nil || e.Message == nil {
		return nil
	}
	return &APIError{Code: *e.Code, Message: *e.Message}
}

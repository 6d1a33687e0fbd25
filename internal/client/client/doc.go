// Package client talks to the Luca REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// net/http with JSON bodies. Every method performs exactly one request and
// maps the response status into the closed error taxonomy:
//
//   - KindInvalidRequest   the request could not be built
//   - KindInvalidResponse  the response could not be read
//   - KindRequestFailed    non-success status without a usable message, or a transport failure
//   - KindDecodingFailed   the body did not match the expected shape
//   - KindUnauthorized     401 on a protected call
//   - KindServerError      a human-readable message from the server
//
// All failures are *Error values. Match kinds with errors.Is against the
// sentinels (ErrUnauthorized, ...) and show users UserMessage(err).
//
// Token storage is not handled here; see package services.
package client

// Package client contains the client-side transport and storage bootstrap
// for Triply.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, liveness and every trip, item and checklist call.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, bounds each call with a timeout, injects an access token
//     via an interceptor, transparently refreshes expired tokens, and maps
//     gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrInvalidInput, ErrAlreadyExists, ErrLocalDataNotAvailable.
package client

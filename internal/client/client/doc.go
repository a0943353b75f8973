// Package client contains the transport layer of the VideoGenius CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, VerifyToken, GenerateVideo and Points.
//  2. A concrete HTTP implementation (see HTTPClient) that encodes
//     text-mode submissions as multipart form fields (or JSON, when
//     configured) and image-mode submissions as multipart with a binary
//     "image" part, always sending the credential as a bearer header.
//     Responses are decoded per endpoint and validated before they leave
//     the package.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure wraps one of the kinds ErrAuth, ErrUnauthorized,
// ErrValidation, ErrInsufficientBalance, ErrNetwork or ErrServer inside an
// *APIError whose message is the server-supplied text when available.
// Match kinds with errors.Is. HTTP 402 is the only path to
// ErrInsufficientBalance.
//
// Nothing here retries.
package client

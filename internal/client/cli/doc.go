// Package cli provides the interactive VideoGenius command-line client.
//
// It wires configuration, the local session database, the API client and
// the auth and generation services, then runs a REPL. At startup a saved
// session is revalidated with the server and forgotten if rejected.
//
// Commands:
//   - register / login / logout
//   - whoami, points
//   - t2v (text to video), i2v (image to video)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

// Package session persists the active credential and user profile of the
// VideoGenius CLI in the local SQLite database.
//
// The pair lives in the "session" key/value table under the fixed keys
// "token" and "user" (JSON). Put writes both keys in one transaction, so a
// reader sees either the old pair or the new one, never a mix.
package session

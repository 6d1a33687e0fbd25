// Package secrets persists small string secrets on the device. The session
// client keeps exactly one entry in it: the auth token under
// common.AuthTokenKey.
//
// SQLiteStore is the production backend; MemoryStore is for tests and for
// runs that must not touch disk.
package secrets

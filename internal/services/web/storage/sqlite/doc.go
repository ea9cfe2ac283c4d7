// Package sqlite provides the registration record store backed by SQLite.
//
// Open applies the embedded schema on every start, so a fresh file and an
// existing one both come up ready to serve.
package sqlite

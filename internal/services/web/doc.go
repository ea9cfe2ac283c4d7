// Package web hosts the Cyntas marketing and registration site.
//
// It wires the SQLite registration store, the signed flash cookie jar and
// the feature modules behind one HTTP server with request logging, request
// ids and panic recovery.
package web

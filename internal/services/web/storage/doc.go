// Package storage declares persistence contracts for registration records.
//
// The two record tables are independent. Rows are created by the public
// registration forms, never updated, and destroyed only by admin deletion.
package storage

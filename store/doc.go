// Package store provides the local key-value stores in which exmini persists
// its transactions: a folder of JSON files, a SQLite database, or memory.
//
// All stores report a missing key with an error matching fs.ErrNotExist.
package store

// Package storage implements the local persistent key-value store backing
// the credential store. Values are opaque byte slices; the credential store
// keeps the whole user table under one key and the session marker under
// another.
package storage

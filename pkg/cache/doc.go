// Package cache implements a pure, content-addressed store of PNG
// images keyed by the SHA-256 of a plain-text key string. It backs the
// sample pipeline and tile builder so that re-running a build with the
// same inputs performs zero synthesis-engine calls.
//
// The directory is an explicit construction parameter, not a library
// policy: Open never picks a default, and callers wanting one (e.g. a
// CLI falling back to "temp/") make that choice at their own boundary.
package cache

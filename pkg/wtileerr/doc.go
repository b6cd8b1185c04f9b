// Package wtileerr provides the tagged error taxonomy shared across the
// omega-tile pipeline: sample derivation, tile synthesis, caching and
// atlas solving all report failures through a single Error type so that
// callers can test for a Kind with errors.Is/As instead of matching
// strings.
package wtileerr

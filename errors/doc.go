// Package errors provides sentinel errors and predicates shared across the
// motlab packages.
//
// Sentinels are compared with errors.Is; predicates classify wrapped errors
// from the filesystem and network surfaces this module touches. An unmatched
// machine identity during settings resolution is not an error at all: it
// falls back to defaults, so no sentinel exists for it.
package errors

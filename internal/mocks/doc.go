// Package mocks provides hand-rolled test doubles for the store and auth
// interfaces. Each mock carries optional function fields that override the
// default in-memory behavior per test.
package mocks

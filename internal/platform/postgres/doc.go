// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces. All statements are parameterized and context-aware; database
// errors are normalized through MapError so callers only ever see the
// sentinel errors declared in the store package.
package postgres

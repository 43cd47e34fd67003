// Package repo holds the ent-generated client for the schemas under
// internal/schema. Run `go generate ./internal/repo` after changing a schema;
// the generated sources are not committed.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema

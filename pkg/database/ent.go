package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/repo"
)

// NewEntClient creates a new Ent client from central config. The client owns
// the pool; closing it closes the connection.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	db, err := New(FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewEntClientFromDB(db), nil
}

// NewEntClientFromDB builds an Ent client on an already opened pool.
func NewEntClientFromDB(db *DB) *repo.Client {
	drv := entsql.OpenDB(dialect.Postgres, db.Conn())
	return repo.NewClient(repo.Driver(drv))
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}

package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/versehub/versehub_api/config"
	"github.com/versehub/versehub_api/internal/db"
)

type Dependencies struct {
	DB *db.DB
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	deps := Dependencies{
		DB: database,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}

package postgre

import (
	"database/sql"

	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

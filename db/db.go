package db

import (
	"context"

	"legrazie-orders/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

func Init(cfg config.DBConfig) error {
	var err error
	Pool, err = pgxpool.New(context.Background(), cfg.URL)
	return err
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}

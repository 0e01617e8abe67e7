package db

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/daniilsolovey/cms/docs/patches"
)

// ConnConfig converts go-pg options into a pgx config for the database/sql
// handle goose needs.
func ConnConfig(opt *pg.Options) (pgx.ConnConfig, error) {
	host, portStr, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("split database address %q: %w", opt.Addr, err)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse database port %q: %w", portStr, err)
	}

	return pgx.ConnConfig{
		Host:      host,
		Port:      uint16(port),
		Database:  opt.Database,
		User:      opt.User,
		Password:  opt.Password,
		TLSConfig: opt.TLSConfig,
	}, nil
}

// RunMigrations applies the embedded goose patches.
func RunMigrations(ctx context.Context, config pgx.ConnConfig) error {
	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(patches.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// Package db embeds the goose migrations so the binary can migrate without
// the source tree.
package db

import "embed"

// Migrations holds migrations/*.sql. Use with goose.SetBaseFS and the "migrations" dir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory name inside Migrations.
const MigrationsDir = "migrations"

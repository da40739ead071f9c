package migrations

import "embed"

// FS содержит SQL-миграции goose для обоих диалектов.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

package migrations

import "embed"

// FS embeds the SQL migrations of the sync schema. They are applied through
// the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1

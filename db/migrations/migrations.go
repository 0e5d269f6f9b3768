package migrations

import "embed"

// FS holds the placement, campaign and targeting schema. internal/db feeds
// it to golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1

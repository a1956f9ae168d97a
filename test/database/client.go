// Package database provides the wrapped test database client.
package database

import (
	"testing"

	"github.com/atlasfibra/backoffice/pkg/database"
	"github.com/atlasfibra/backoffice/test/util"
)

// NewTestClient creates a test database client.
// In CI (CI_DATABASE_URL set): connects to the external PostgreSQL service.
// In local dev: spins up a shared testcontainer.
// Cleanup (schema drop, connection close) is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}

package db

import (
	"database/sql"

	"github.com/craftops/atelier/internal/server/dashboard"
	"github.com/craftops/atelier/internal/server/users"
)

// RepositoryManager hands out the repositories bound to one database
// connection.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Dashboard() dashboard.Repository
}

// Package repomanager vends repositories bound to a database handle, so that
// services can run several of them inside one transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/seungyeonleeee/triply/internal/dbx"
	"github.com/seungyeonleeee/triply/internal/server/repositories/checklists"
	"github.com/seungyeonleeee/triply/internal/server/repositories/items"
	"github.com/seungyeonleeee/triply/internal/server/repositories/refreshtokens"
	"github.com/seungyeonleeee/triply/internal/server/repositories/trips"
	"github.com/seungyeonleeee/triply/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Trips(db dbx.DBTX) trips.Repository
	Items(db dbx.DBTX) items.Repository
	Checklists(db dbx.DBTX) checklists.Repository
}

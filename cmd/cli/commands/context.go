package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/postgres"
)

// AppContext holds the shared application dependencies for commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Store    db.Store
	Logger   *zap.Logger
	Ctx      context.Context
}

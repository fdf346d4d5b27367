package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/awayboard/awayboard/internal/config"
	"github.com/awayboard/awayboard/pkg/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Store  *store.Store
	Logger *zap.Logger
	Ctx    context.Context
}

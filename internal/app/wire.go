//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/tair/stockdesk/internal/config"
	invcommand "github.com/tair/stockdesk/internal/inventory/usecase/command"
	invquery "github.com/tair/stockdesk/internal/inventory/usecase/query"
	usercommand "github.com/tair/stockdesk/internal/user/usecase/command"
	userquery "github.com/tair/stockdesk/internal/user/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideCredentialRepository,
	ProvideFileStore,
)

var HandlerSet = wire.NewSet(
	invcommand.NewAddItemHandler,
	invcommand.NewUpdateItemHandler,
	invcommand.NewDeleteItemHandler,
	invcommand.NewImportItemsHandler,
	invcommand.NewExportItemsHandler,
	invquery.NewListItemsHandler,
	invquery.NewSearchItemsHandler,
	invquery.NewLowStockHandler,
	usercommand.NewLoginUserHandler,
	usercommand.NewAddUserHandler,
	usercommand.NewRemoveUserHandler,
	usercommand.NewChangeRoleHandler,
	userquery.NewListUsersHandler,
)

// InitializeApp initializes the application with all dependencies
func InitializeApp(cfg *config.Config) *App {
	wire.Build(
		RepositorySet,
		HandlerSet,
		NewApp,
	)
	return nil
}

package app

import (
	"github.com/tair/stockdesk/internal/config"
	invdomain "github.com/tair/stockdesk/internal/inventory/domain"
	invrepo "github.com/tair/stockdesk/internal/inventory/repository"
	"github.com/tair/stockdesk/internal/inventory/storage"
	invcommand "github.com/tair/stockdesk/internal/inventory/usecase/command"
	invquery "github.com/tair/stockdesk/internal/inventory/usecase/query"
	userdomain "github.com/tair/stockdesk/internal/user/domain"
	userrepo "github.com/tair/stockdesk/internal/user/repository"
	usercommand "github.com/tair/stockdesk/internal/user/usecase/command"
	userquery "github.com/tair/stockdesk/internal/user/usecase/query"
)

// App bundles the wired use-case handlers behind the console shell
type App struct {
	Config *config.Config
	Items  invdomain.ItemRepository
	Files  *storage.FileStore

	AddItem     *invcommand.AddItemHandler
	UpdateItem  *invcommand.UpdateItemHandler
	DeleteItem  *invcommand.DeleteItemHandler
	ImportItems *invcommand.ImportItemsHandler
	ExportItems *invcommand.ExportItemsHandler
	ListItems   *invquery.ListItemsHandler
	SearchItems *invquery.SearchItemsHandler
	LowStock    *invquery.LowStockHandler

	Login      *usercommand.LoginUserHandler
	AddUser    *usercommand.AddUserHandler
	RemoveUser *usercommand.RemoveUserHandler
	ChangeRole *usercommand.ChangeRoleHandler
	ListUsers  *userquery.ListUsersHandler
}

// NewApp assembles the application from its wired parts
func NewApp(
	cfg *config.Config,
	items invdomain.ItemRepository,
	files *storage.FileStore,
	addItem *invcommand.AddItemHandler,
	updateItem *invcommand.UpdateItemHandler,
	deleteItem *invcommand.DeleteItemHandler,
	importItems *invcommand.ImportItemsHandler,
	exportItems *invcommand.ExportItemsHandler,
	listItems *invquery.ListItemsHandler,
	searchItems *invquery.SearchItemsHandler,
	lowStock *invquery.LowStockHandler,
	login *usercommand.LoginUserHandler,
	addUser *usercommand.AddUserHandler,
	removeUser *usercommand.RemoveUserHandler,
	changeRole *usercommand.ChangeRoleHandler,
	listUsers *userquery.ListUsersHandler,
) *App {
	return &App{
		Config:      cfg,
		Items:       items,
		Files:       files,
		AddItem:     addItem,
		UpdateItem:  updateItem,
		DeleteItem:  deleteItem,
		ImportItems: importItems,
		ExportItems: exportItems,
		ListItems:   listItems,
		SearchItems: searchItems,
		LowStock:    lowStock,
		Login:       login,
		AddUser:     addUser,
		RemoveUser:  removeUser,
		ChangeRole:  changeRole,
		ListUsers:   listUsers,
	}
}

// ProvideItemRepository provides the session's item store
func ProvideItemRepository() invdomain.ItemRepository {
	return invrepo.NewMemoryItemRepository()
}

// ProvideCredentialRepository provides the seeded credential table
func ProvideCredentialRepository() userdomain.CredentialRepository {
	return userrepo.NewSeededCredentialRepository()
}

// ProvideFileStore provides the primary inventory file gateway
func ProvideFileStore(cfg *config.Config) *storage.FileStore {
	return storage.NewFileStore(cfg.DataFile)
}

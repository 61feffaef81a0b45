package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/tair/stockdesk/internal/app"
	"github.com/tair/stockdesk/internal/inventory/search"
	invcommand "github.com/tair/stockdesk/internal/inventory/usecase/command"
	invquery "github.com/tair/stockdesk/internal/inventory/usecase/query"
	userdomain "github.com/tair/stockdesk/internal/user/domain"
	usercommand "github.com/tair/stockdesk/internal/user/usecase/command"
	userquery "github.com/tair/stockdesk/internal/user/usecase/query"
	"github.com/tair/stockdesk/pkg/logger"
)

const maxLoginAttempts = 3

// Console is the interactive shell in front of the inventory core. All
// store access runs on the command loop; the only asynchronous element is
// the search debounce timer.
type Console struct {
	app *app.App
	in  *bufio.Scanner
	out io.Writer

	session  *userdomain.Session
	debounce *search.Debouncer

	// mu guards the presentation state because the debounce timer fires on
	// its own goroutine.
	mu       sync.Mutex
	query    string
	view     search.View
	sortCol  search.Column
	sortDesc bool
	sorted   bool
}

// NewConsole creates a console bound to the given streams
func NewConsole(a *app.App, in io.Reader, out io.Writer) *Console {
	c := &Console{
		app:     a,
		in:      bufio.NewScanner(in),
		out:     out,
		sortCol: search.ByID,
	}
	c.debounce = search.NewDebouncer(a.Config.SearchDebounce, c.applyQuery)
	return c
}

// Run authenticates, loads the inventory file and serves commands until
// the user quits or input ends
func (c *Console) Run() error {
	defer c.debounce.Close()

	if err := c.login(); err != nil {
		return err
	}

	items, err := c.app.Files.Load()
	if err != nil {
		// Non-fatal: the session continues with an empty store
		fmt.Fprintf(c.out, "Error loading %s: %v\n", c.app.Files.Path(), err)
		logger.Logger.Error().Err(err).Msg("Failed to load inventory file")
	} else {
		c.app.Items.ReplaceAll(items)
	}

	fmt.Fprintf(c.out, "Loaded %d items from %s. Type 'help' for commands.\n",
		c.app.Items.Len(), c.app.Files.Path())
	c.refresh()
	c.render()

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			break
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		if quit := c.dispatch(line); quit {
			break
		}
	}

	c.saveStore()
	return c.in.Err()
}

func (c *Console) login() error {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username := c.prompt("Username")
		password := c.prompt("Password")

		session, err := c.app.Login.Handle(usercommand.LoginUserCommand{
			Username: username,
			Password: password,
		})
		if err != nil {
			fmt.Fprintf(c.out, "Login failed: %v\n", err)
			logger.Logger.Warn().Int("attempt", attempt).Msg("Login rejected")
			continue
		}

		c.session = session
		fmt.Fprintf(c.out, "Welcome %s (%s)\n", session.Username, session.Role)
		logger.Logger.Info().
			Str("username", session.Username).
			Str("role", session.Role).
			Str("session_id", session.ID.String()).
			Msg("Authenticated")
		return nil
	}
	return fmt.Errorf("too many failed login attempts")
}

// dispatch runs one command line; the bool result asks for shutdown
func (c *Console) dispatch(line string) bool {
	cmd, rest := splitCommand(line)

	switch cmd {
	case "help":
		c.printHelp()
	case "list":
		c.render()
	case "add":
		c.addItem()
	case "update":
		c.updateItem(rest)
	case "delete":
		c.deleteItem(rest)
	case "search":
		// Simulates incremental typing: the view updates once the input
		// pauses for the quiet period
		c.debounce.Input(rest)
	case "show":
		// Back to the identity view: no filter, insertion order
		c.mu.Lock()
		c.sorted = false
		c.mu.Unlock()
		c.debounce.ShowAll()
	case "sort":
		c.sortView(rest)
	case "lowstock":
		c.lowStock()
	case "import":
		c.importItems(rest)
	case "export":
		c.exportItems(rest)
	case "users":
		c.listUsers()
	case "adduser":
		c.addUser(rest)
	case "deluser":
		c.removeUser(rest)
	case "setrole":
		c.changeRole(rest)
	case "save":
		c.saveStore()
	case "exit", "quit":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `Commands:
  list                  show the current view
  add                   add an item (prompts for fields)
  update <row>          edit the item at a view row
  delete <row>          delete the item at a view row (asks to confirm)
  search <text>         filter by id or name substring (debounced)
  show                  clear the filter and sorting, show everything
  sort <column> [desc]  order the view by id|name|quantity|price|total
  sort off              restore insertion order
  lowstock              list items running low
  import <path>         replace the inventory from a file
  export <path>         write a report with total values
  users                 list accounts (admin)
  adduser <name> <role> add an account (admin)
  deluser <name>        remove an account (admin)
  setrole <name> <role> change an account role (admin)
  save                  write the inventory file now
  exit                  save and quit`)
}

func (c *Console) addItem() {
	item, err := c.app.AddItem.Handle(invcommand.AddItemCommand{
		ID:       c.prompt("Item ID"),
		Name:     c.prompt("Item Name"),
		Quantity: c.prompt("Quantity"),
		Price:    c.prompt("Price"),
	})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Added %s\n", item.ID)
	c.afterMutation()
}

func (c *Console) updateItem(arg string) {
	pos, ok := c.storePos(arg)
	if !ok {
		return
	}
	current, err := c.app.Items.Get(pos)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	// Empty input keeps the current value, like an edit form prefilled
	// from the selected row
	item, err := c.app.UpdateItem.Handle(invcommand.UpdateItemCommand{
		Pos:      pos,
		ID:       c.promptDefault("Item ID", current.ID),
		Name:     c.promptDefault("Item Name", current.Name),
		Quantity: c.promptDefault("Quantity", strconv.Itoa(current.Quantity)),
		Price:    c.promptDefault("Price", current.Price.StringFixed(2)),
	})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Updated %s\n", item.ID)
	c.afterMutation()
}

func (c *Console) deleteItem(arg string) {
	pos, ok := c.storePos(arg)
	if !ok {
		return
	}
	item, err := c.app.Items.Get(pos)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	answer := c.prompt(fmt.Sprintf("Delete %s (%s)? [y/N]", item.ID, item.Name))
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(c.out, "Cancelled")
		return
	}

	removed, err := c.app.DeleteItem.Handle(invcommand.DeleteItemCommand{Pos: pos})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Deleted %s\n", removed.ID)
	c.afterMutation()
}

// applyQuery is the debouncer's fire callback
func (c *Console) applyQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
	c.refresh()
	c.render()
}

func (c *Console) sortView(args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		fmt.Fprintln(c.out, "Usage: sort <id|name|quantity|price|total> [desc], or 'sort off'")
		return
	}
	if strings.EqualFold(fields[0], "off") {
		c.mu.Lock()
		c.sorted = false
		c.mu.Unlock()
		c.refresh()
		c.render()
		return
	}
	col, ok := search.ParseColumn(fields[0])
	if !ok {
		fmt.Fprintf(c.out, "Unknown column %q\n", fields[0])
		return
	}
	c.mu.Lock()
	c.sortCol = col
	c.sortDesc = len(fields) > 1 && strings.EqualFold(fields[1], "desc")
	c.sorted = true
	c.mu.Unlock()
	c.refresh()
	c.render()
}

func (c *Console) lowStock() {
	low := c.app.LowStock.Handle(invquery.LowStockQuery{
		Threshold: c.app.Config.LowStockThreshold,
	})
	if len(low) == 0 {
		fmt.Fprintln(c.out, "No items below the low-stock threshold")
		return
	}
	for _, item := range low {
		fmt.Fprintf(c.out, "  %s  %s  qty=%d\n", item.ID, item.Name, item.Quantity)
	}
}

func (c *Console) importItems(path string) {
	if path == "" {
		fmt.Fprintln(c.out, "Usage: import <path>")
		return
	}
	answer := c.prompt("Importing replaces the current inventory. Continue? [y/N]")
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(c.out, "Cancelled")
		return
	}

	report, err := c.app.ImportItems.Handle(invcommand.ImportItemsCommand{Path: path})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Imported %d items", report.Imported)
	if dropped := report.Loaded - report.Imported; dropped > 0 {
		fmt.Fprintf(c.out, " (%d duplicate ids dropped)", dropped)
	}
	fmt.Fprintln(c.out)
	c.afterMutation()
}

func (c *Console) exportItems(path string) {
	if path == "" {
		fmt.Fprintln(c.out, "Usage: export <path>")
		return
	}
	count, err := c.app.ExportItems.Handle(invcommand.ExportItemsCommand{Path: path})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Exported %d items to %s\n", count, path)
}

func (c *Console) listUsers() {
	users, err := c.app.ListUsers.Handle(userquery.ListUsersQuery{Acting: c.session})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	for _, u := range users {
		marker := ""
		if u.Protected {
			marker = " (protected)"
		}
		fmt.Fprintf(c.out, "  %s  %s%s\n", u.Username, u.Role, marker)
	}
}

func (c *Console) addUser(args string) {
	fields := strings.Fields(args)
	if len(fields) < 1 {
		fmt.Fprintln(c.out, "Usage: adduser <name> [role]")
		return
	}
	role := ""
	if len(fields) > 1 {
		role = fields[1]
	}
	user, err := c.app.AddUser.Handle(usercommand.AddUserCommand{
		Acting:   c.session,
		Username: fields[0],
		Password: c.prompt("Password for " + fields[0]),
		Role:     role,
	})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Added user %s (%s)\n", user.Username, user.Role)
}

func (c *Console) removeUser(args string) {
	username := strings.TrimSpace(args)
	if username == "" {
		fmt.Fprintln(c.out, "Usage: deluser <name>")
		return
	}
	if err := c.app.RemoveUser.Handle(usercommand.RemoveUserCommand{
		Acting:   c.session,
		Username: username,
	}); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Removed user %s\n", username)
}

func (c *Console) changeRole(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		fmt.Fprintln(c.out, "Usage: setrole <name> <role>")
		return
	}
	user, err := c.app.ChangeRole.Handle(usercommand.ChangeRoleCommand{
		Acting:   c.session,
		Username: fields[0],
		Role:     fields[1],
	})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "User %s is now %s\n", user.Username, user.Role)
}

// afterMutation persists the store and re-derives the active view, matching
// the save-on-every-mutation behavior of the original form
func (c *Console) afterMutation() {
	c.saveStore()
	c.refresh()
	c.render()
}

func (c *Console) saveStore() {
	if err := c.app.Files.Save(c.app.Items.All()); err != nil {
		// Non-fatal: the in-memory store stays the source of truth
		fmt.Fprintf(c.out, "Error saving %s: %v\n", c.app.Files.Path(), err)
		logger.Logger.Error().Err(err).Msg("Failed to save inventory file")
	}
}

// refresh re-derives the presentation view from the store, the active query
// and the active sort
func (c *Console) refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := c.app.SearchItems.Handle(invquery.SearchItemsQuery{Query: c.query})
	if c.sorted {
		view = search.SortBy(view, c.sortCol, c.sortDesc)
	}
	c.view = view
}

func (c *Console) render() {
	c.mu.Lock()
	view := c.view
	query := c.query
	c.mu.Unlock()

	if strings.TrimSpace(query) != "" {
		fmt.Fprintf(c.out, "Filter: %q (%d of %d items)\n", query, len(view), c.app.Items.Len())
	}
	if len(view) == 0 {
		fmt.Fprintln(c.out, "No items")
		return
	}
	fmt.Fprintf(c.out, "%4s  %-12s %-24s %8s %12s %14s\n",
		"#", "ID", "Name", "Qty", "Price", "Total Value")
	for i, entry := range view {
		item := entry.Item
		fmt.Fprintf(c.out, "%4d  %-12s %-24s %8d %12s %14s\n",
			i+1, item.ID, item.Name, item.Quantity,
			"$"+item.Price.StringFixed(2), "$"+item.TotalValue().StringFixed(2))
	}
}

// storePos translates a 1-based view row argument into a position in the
// unfiltered store. View indices are never used against the store directly.
func (c *Console) storePos(arg string) (int, bool) {
	row, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Fprintln(c.out, "Expected a row number, see 'list'")
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if row < 1 || row > len(c.view) {
		fmt.Fprintf(c.out, "No row %d in the current view\n", row)
		return 0, false
	}
	return c.view[row-1].Pos, true
}

func (c *Console) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) promptDefault(label, current string) string {
	fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	if !c.in.Scan() {
		return current
	}
	text := strings.TrimSpace(c.in.Text())
	if text == "" {
		return current
	}
	return text
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/streetbazaar/storefront/pkg/global"
)

// dashboardLoop handles the authenticated screen. It returns true on quit,
// false on logout.
func (s *Shell) dashboardLoop() bool {
	fmt.Fprintln(s.out, `Type "help" for commands.`)

	for {
		prompt := fmt.Sprintf("streetbazaar/%s> ", s.tab)
		line, ok := s.readLine(prompt)
		if !ok {
			return true
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			s.printHelp()
		case "tab":
			s.switchTab(args)
		case "search":
			s.runSearch(strings.Join(args, " "), s.currentCategory())
		case "category":
			s.setCategory(args)
		case "categories":
			fmt.Fprintln(s.out, strings.Join(s.catalog.Categories(), ", "))
		case "list":
			s.renderProducts()
		case "orders":
			s.refreshOrders()
			s.renderOrders()
			s.tab = tabOrders
		case "add":
			s.cmdAdd(args)
		case "cart":
			s.renderCart()
		case "qty":
			s.cmdQty(args)
		case "rm":
			s.cmdRemove(args)
		case "checkout":
			s.cmdCheckout(args)
		case "confirm":
			s.cmdTransition(args, "confirm")
		case "cancel":
			s.cmdTransition(args, "cancel")
		case "add-product":
			s.cmdAddProduct()
		case "logout":
			s.session.Logout()
			s.unmount()
			fmt.Fprintln(s.out, "Logged out.")
			return false
		case "quit", "exit":
			return true
		default:
			fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "common:  tab <catalog|orders>, search <terms>, category <name|->, categories, list, orders, logout, quit")
	if s.session.User().IsVendor() {
		fmt.Fprintln(s.out, "vendor:  add <product#> <qty>, cart, qty <line#> <qty>, rm <line#>, checkout [address]")
	}
	if s.session.User().IsSupplier() {
		fmt.Fprintln(s.out, "supplier: confirm <order#>, cancel <order#>, add-product")
	}
}

func (s *Shell) switchTab(args []string) {
	if len(args) != 1 || (args[0] != tabCatalog && args[0] != tabOrders) {
		fmt.Fprintln(s.out, "usage: tab <catalog|orders>")
		return
	}
	s.tab = args[0]
	if s.tab == tabOrders {
		s.refreshOrders()
		s.renderOrders()
	} else {
		s.renderProducts()
	}
}

func (s *Shell) currentCategory() string {
	_, category := s.catalog.Query()
	return category
}

func (s *Shell) runSearch(search, category string) {
	fmt.Fprintln(s.out, "Loading products...")
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if _, err := s.catalog.Search(ctx, search, category); err != nil {
		s.errorf(err, defaultErrMsg)
		return
	}
	s.renderProducts()
}

func (s *Shell) setCategory(args []string) {
	search, _ := s.catalog.Query()
	category := ""
	if len(args) == 1 && args[0] != "-" {
		category = args[0]
	}
	s.runSearch(search, category)
}

func (s *Shell) refreshOrders() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if err := s.orders.Refresh(ctx); err != nil {
		s.errorf(err, defaultErrMsg)
	}
}

// parseIndex converts a 1-based display index into a slice index
func (s *Shell) parseIndex(arg string, length int) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > length {
		fmt.Fprintf(s.out, "no such entry %q\n", arg)
		return 0, false
	}
	return n - 1, true
}

// Package shell is the terminal front of the storefront. It composes the
// session store, catalog, cart and order view by role and active tab, and
// owns no business state of its own. Every command runs to completion before
// the next line is read, so the components below it see one action at a time.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/streetbazaar/storefront/internal/cart"
	"github.com/streetbazaar/storefront/internal/catalog"
	"github.com/streetbazaar/storefront/internal/orders"
	"github.com/streetbazaar/storefront/internal/session"
	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/global"
)

const (
	tabCatalog = "catalog"
	tabOrders  = "orders"

	defaultErrMsg = "An unexpected error occurred"
)

type Shell struct {
	api     *api.Client
	session *session.Store
	catalog *catalog.Catalog
	cart    *cart.Manager
	orders  *orders.View

	in  *bufio.Scanner
	out io.Writer
	tab string
}

func New(client *api.Client, sess *session.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		api:     client,
		session: sess,
		in:      bufio.NewScanner(in),
		out:     out,
		tab:     tabCatalog,
	}
}

// Run drives the shell until quit or EOF
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "StreetBazaar - connecting vendors with suppliers")

	if err := s.session.Restore(ctx); err != nil {
		log.Printf("Warning: session restore failed: %v", err)
	}

	for {
		if !s.session.Authenticated() {
			if quit := s.authLoop(); quit {
				return nil
			}
			continue
		}

		s.mount()
		if quit := s.dashboardLoop(); quit {
			return nil
		}
	}
}

// mount builds the per-session components once a session exists. Only
// vendors get a cart.
func (s *Shell) mount() {
	user := s.session.User()
	fmt.Fprintf(s.out, "Welcome, %s (%s)\n", user.Name, user.UserType)

	s.catalog = catalog.New(s.api)
	s.orders = orders.New(s.api)
	s.cart = nil
	if user.IsVendor() {
		s.cart = cart.New(s.api)
	}
	s.tab = tabCatalog

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if _, err := s.catalog.Search(ctx, "", ""); err != nil {
		fmt.Fprintln(s.out, api.ErrorMessage(err, defaultErrMsg))
	}
	if _, err := s.catalog.LoadCategories(ctx); err != nil {
		log.Printf("Warning: failed to load categories: %v", err)
	}
}

// unmount discards the per-session components. The cart dies with the
// session; nothing is persisted.
func (s *Shell) unmount() {
	s.catalog = nil
	s.cart = nil
	s.orders = nil
}

// readLine prompts and reads one line; ok is false on EOF
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) errorf(err error, fallback string) {
	fmt.Fprintln(s.out, api.ErrorMessage(err, fallback))
}

package shell

import (
	"fmt"
	"strings"

	"github.com/streetbazaar/storefront/pkg/global"
	"github.com/streetbazaar/storefront/pkg/models"
)

// authLoop handles the unauthenticated screen. It returns true when the user
// quits, false once a session exists.
func (s *Shell) authLoop() bool {
	fmt.Fprintln(s.out, `Type "login <email> <password>", "register", or "quit".`)

	for {
		line, ok := s.readLine("streetbazaar> ")
		if !ok {
			return true
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "login":
			if len(fields) != 3 {
				fmt.Fprintln(s.out, "usage: login <email> <password>")
				continue
			}
			ctx, cancel := global.GetDefaultTimer()
			err := s.session.Login(ctx, fields[1], fields[2])
			cancel()
			if err != nil {
				s.errorf(err, "Login failed")
				continue
			}
			return false

		case "register":
			s.registerPrompt()

		case "help":
			fmt.Fprintln(s.out, "commands: login <email> <password>, register, quit")

		case "quit", "exit":
			return true

		default:
			fmt.Fprintf(s.out, "unknown command %q\n", fields[0])
		}
	}
}

// registerPrompt walks the registration form one field at a time
func (s *Shell) registerPrompt() {
	var req models.RegisterRequest
	prompts := []struct {
		label string
		dest  *string
	}{
		{"Email: ", &req.Email},
		{"Password: ", &req.Password},
		{"Full name: ", &req.Name},
		{"Phone: ", &req.Phone},
		{"Role (vendor/supplier): ", &req.UserType},
		{"Business name: ", &req.BusinessName},
		{"City: ", &req.City},
		{"State: ", &req.State},
	}

	for _, p := range prompts {
		value, ok := s.readLine(p.label)
		if !ok {
			return
		}
		*p.dest = value
	}

	if req.UserType != models.RoleVendor && req.UserType != models.RoleSupplier {
		fmt.Fprintln(s.out, "role must be vendor or supplier")
		return
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if _, err := s.session.Register(ctx, req); err != nil {
		s.errorf(err, "Registration failed")
		return
	}
	fmt.Fprintln(s.out, "Registration successful! Please login.")
}

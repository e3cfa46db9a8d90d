package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Shop(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	UpdateQuantity(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	ToggleWishlist(ctx context.Context, args []string) error
	ShowWishlist(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the shopkeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available in every state: help, shop, cart, add, qty, remove,
// wish, wishlist, checkout, exit. While logged out: register, login. While
// logged in: logout, whoami, profile, orders (admin only).
//
// Errors returned by command handlers are printed and the loop continues;
// a failed command must never take the REPL down.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to shopkeeper (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("shop (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: shop, cart, add <id> [qty], qty <id> <n>, remove <id>, wish <id>, wishlist, checkout, profile, orders, whoami, logout, exit")
			} else {
				printlnFn("Available commands: shop, cart, add <id> [qty], qty <id> <n>, remove <id>, wish <id>, wishlist, checkout, register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "shop":
			err = a.Shop(ctx)

		case "cart":
			err = a.ShowCart(ctx)

		case "add":
			err = a.AddToCart(ctx, args)

		case "qty":
			err = a.UpdateQuantity(ctx, args)

		case "remove":
			err = a.RemoveFromCart(ctx, args)

		case "wish":
			err = a.ToggleWishlist(ctx, args)

		case "wishlist":
			err = a.ShowWishlist(ctx)

		case "checkout":
			err = a.Checkout(ctx)

		case "orders":
			err = a.Orders(ctx)

		case "profile":
			err = a.UpdateProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

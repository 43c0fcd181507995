// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
)

// HandleAuth implements "chatbot auth <signup|signin|signout|whoami>".
func HandleAuth(args Args) int {
	parser := NewArgParser(args.Raw)

	app, err := OpenApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer app.Close()

	switch parser.Subcommand() {
	case "signup":
		return authSignUp(app, parser)
	case "signin":
		return authSignIn(app, parser)
	case "signout":
		if err := app.Manager.SignOut(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println("Signed out.")
		return 0
	case "whoami":
		user := app.Manager.CurrentUser()
		if user == nil {
			fmt.Println("Not signed in.")
			return 1
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return 0
	default:
		fmt.Fprintln(os.Stderr, "usage: chatbot auth <signup|signin|signout|whoami>")
		return 1
	}
}

func authSignUp(app *App, parser *ArgParser) int {
	name := parser.Flag("name", "n")
	email := parser.Flag("email", "e")

	var err error
	if name == "" {
		if name, err = promptLine("Name: "); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	if email == "" {
		if email, err = promptLine("Email: "); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	user, err := app.Manager.SignUp(name, email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Welcome, %s! You are signed in.\n", user.Name)
	return 0
}

func authSignIn(app *App, parser *ArgParser) int {
	email := parser.Flag("email", "e")

	var err error
	if email == "" {
		if email, err = promptLine("Email: "); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	user, err := app.Manager.SignIn(email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return 0
}

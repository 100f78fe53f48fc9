// Package main is the entry point for the addons-path CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/odoo-tools/addons-path/cmd/addons-path/commands"
	"github.com/odoo-tools/addons-path/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}

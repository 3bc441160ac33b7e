package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usersCmd manages the accounts that may call /api/v1 when auth is enabled.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage API users",
}

var usersAddCmd = &cobra.Command{
	Use:   "add USERNAME PASSWORD",
	Short: "Create a user that can sign in to the API",
	Args:  cobra.ExactArgs(2),
	RunE:  runUsersAdd,
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List API users",
	Args:    cobra.NoArgs,
	RunE:    runUsersList,
}

func init() {
	usersCmd.AddCommand(usersAddCmd, usersListCmd)
}

func runUsersAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		u, err := a.services.SignUp(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", u.Username, u.ID)
		if !a.cfg.Auth.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("auth.enabled is false; the API accepts anonymous requests"))
		}
		return nil
	})
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app) error {
		users, err := a.services.Users(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderUsers(users))
		return nil
	})
}

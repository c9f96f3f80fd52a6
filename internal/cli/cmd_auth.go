package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/adamanr/hrdesk/internal/client"
	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				_, _ = fmt.Fprint(a.opts.Err, "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			s, err := a.api.Login(cmd.Context(), email, password)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.Status != 0 {
					a.notify.Notify(pages.LevelError, apiErr.Message)
				} else {
					a.notify.Notify(pages.LevelError, "Login failed. Check the server address and try again.")
				}
				return err
			}

			a.notify.Notify(pages.LevelSuccess, fmt.Sprintf("Signed in as %s (%s).", s.UserName, guard.RoleLabel(s.Role)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.Logout(cmd.Context()); err != nil {
				a.notify.Notify(pages.LevelError, "Signed out locally, the server could not be reached.")
				return err
			}

			a.notify.Notify(pages.LevelSuccess, "Signed out.")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := a.store.Load()
			if err != nil {
				return err
			}

			if !s.Authenticated() {
				a.println("Not signed in.")
				return nil
			}

			renderFields(a.opts.Out,
				"User", s.UserName,
				"Employee ID", s.UserID,
				"Role", guard.RoleLabel(s.Role),
				"Server", a.cfg.APIURL,
			)
			return nil
		},
	}
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the pages available to the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := a.store.Load()
			if err != nil {
				return err
			}
			if !s.Authenticated() {
				return ErrNotLoggedIn
			}

			rows := make([][]string, 0)
			for _, item := range guard.Menu(s.Role) {
				rows = append(rows, []string{item.Title, string(item.Page)})
			}

			renderTitle(a.opts.Out, s.UserName+" · "+guard.RoleLabel(s.Role))
			renderTable(a.opts.Out, []string{"Page", "Path"}, rows, nil)
			return nil
		},
	}
}

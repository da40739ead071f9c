package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts in the configured store",
	}
	cmd.AddCommand(newUserRegisterCmd(opts))
	return cmd
}

func newUserRegisterCmd(opts *rootOptions) *cobra.Command {
	ao := &accountOptions{}
	var confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts.cfg, opts.log, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if confirm == "" {
				confirm = ao.password
			}
			u, err := a.users.SignUp(cmd.Context(), ao.email, ao.password, confirm)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s (uid %s)\n", u.Email, u.UID)
			return nil
		},
	}
	addAccountFlags(cmd, ao)
	cmd.Flags().StringVar(&confirm, "confirm", "", "Repeat the password (defaults to --password)")
	return cmd
}

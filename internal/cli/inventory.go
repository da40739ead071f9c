package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/inventory"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/spf13/cobra"
)

type accountOptions struct {
	email    string
	password string
}

func addAccountFlags(cmd *cobra.Command, ao *accountOptions) {
	cmd.PersistentFlags().StringVar(&ao.email, "email", "", "Account email")
	cmd.PersistentFlags().StringVar(&ao.password, "password", "", "Account password")
	_ = cmd.MarkPersistentFlagRequired("email")
	_ = cmd.MarkPersistentFlagRequired("password")
}

func newInventoryCmd(opts *rootOptions) *cobra.Command {
	ao := &accountOptions{}
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "View and edit your materials in the configured store",
	}
	addAccountFlags(cmd, ao)
	cmd.AddCommand(
		newInventoryShowCmd(opts, ao),
		newInventoryAddCmd(opts, ao),
		newInventorySetCmd(opts, ao),
	)
	return cmd
}

func newInventoryShowCmd(opts *rootOptions, ao *accountOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the materials on hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEditor(cmd, opts, ao, func(_ context.Context, ed *inventory.Editor) error {
				return printInventory(cmd.OutOrStdout(), ed.Inventory())
			})
		},
	}
}

func newInventoryAddCmd(opts *rootOptions, ao *accountOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "add NAME QUANTITY",
		Short:   "Add one material (writes a single field)",
		Example: `  assistant inventory add blue 3 --email ana@example.com --password secret1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(cmd, opts, ao, func(ctx context.Context, ed *inventory.Editor) error {
				if _, err := ed.AddMaterial(ctx, args[0], args[1]).Wait(ctx); err != nil {
					return err
				}
				return printInventory(cmd.OutOrStdout(), ed.Inventory())
			})
		},
	}
}

func newInventorySetCmd(opts *rootOptions, ao *accountOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "set NAME=QUANTITY...",
		Short:   "Change quantities and save the whole inventory (last write wins)",
		Example: `  assistant inventory set cement=10 sand=4 --email ana@example.com --password secret1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits := make([][2]string, 0, len(args))
			for _, arg := range args {
				name, qty, ok := strings.Cut(arg, "=")
				if !ok || strings.TrimSpace(name) == "" {
					return apperr.Invalid(fmt.Sprintf("expected name=quantity, got %q", arg))
				}
				edits = append(edits, [2]string{strings.TrimSpace(name), qty})
			}
			return withEditor(cmd, opts, ao, func(ctx context.Context, ed *inventory.Editor) error {
				for _, e := range edits {
					ed.SetText(e[0], e[1])
				}
				if _, err := ed.SaveAll(ctx).Wait(ctx); err != nil {
					return err
				}
				return printInventory(cmd.OutOrStdout(), ed.Inventory())
			})
		},
	}
}

// withEditor входит под учётной записью и отдаёт fn загруженный редактор.
// Редактор привязан к сессии: подписчик открывает его при входе и закрывает при выходе.
func withEditor(cmd *cobra.Command, opts *rootOptions, ao *accountOptions,
	fn func(context.Context, *inventory.Editor) error) error {

	ctx := cmd.Context()
	a, err := newApp(ctx, opts.cfg, opts.log, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	session := users.NewSession()
	var editor *inventory.Editor
	unsubscribe := session.Subscribe(func(u *users.User) {
		if editor != nil {
			editor.Close()
			editor = nil
		}
		if u != nil {
			editor = inventory.NewEditor(a.inventory, u.UID)
			opts.log.Debug("signed in", "uid", u.UID)
		}
	})
	defer unsubscribe()

	accounts := a.accounts(session)
	if _, err := accounts.SignIn(ctx, ao.email, ao.password); err != nil {
		return err
	}
	defer accounts.SignOut()

	ed := editor
	if _, err := ed.Load(ctx).Wait(ctx); err != nil {
		return err
	}
	return fn(ctx, ed)
}

func printInventory(w io.Writer, inv materials.Inventory) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "MATERIAL\tQUANTITY")
	for _, it := range inv.Items() {
		_, _ = fmt.Fprintf(tw, "%s\t%d %s\n", it.Name, it.Quantity, materials.UnitOf(it.Name))
	}
	return tw.Flush()
}

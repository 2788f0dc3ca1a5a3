package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/store"
)

// errNoSettingsDSN is returned when a settings command has no database.
var errNoSettingsDSN = errors.New("no settings database: set --settings-dsn or SETTINGS_DSN")

func newSettingsCommand(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the settings database layer",
		Long: `settings edits the rows of the settings table that partialconfig reads
between the remote document and the environment. The database and scope
are taken from --settings-dsn/SETTINGS_DSN and --settings-scope/SETTINGS_SCOPE.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME VALUE",
			Short: "Store a setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				name, value := args[0], args[1]
				if err := config.CheckSetting(name, value); err != nil {
					return err
				}

				return withSettings(cmd, *verbose, func(db *store.DB, scope string) error {
					return db.PutSetting(cmd.Context(), store.Setting{Scope: scope, Name: name, Value: value})
				})
			},
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "Remove a setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSettings(cmd, *verbose, func(db *store.DB, scope string) error {
					return db.DeleteSetting(cmd.Context(), scope, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print the settings of the scope",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSettings(cmd, *verbose, func(db *store.DB, scope string) error {
					settings, err := db.ListSettings(cmd.Context(), scope)
					if err != nil {
						return err
					}

					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "NAME\tVALUE\tUPDATED")
					for _, s := range settings {
						fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Value, s.UpdatedAt.Format(time.RFC3339))
					}
					return w.Flush()
				})
			},
		},
	)

	return cmd
}

// withSettings opens the settings database named by the flags and the
// environment and hands it to fn with the selected scope.
func withSettings(cmd *cobra.Command, verbose bool, fn func(db *store.DB, scope string) error) error {
	opts := loadOptions(cmd, verbose)

	locator, err := config.Locate(opts)
	if err != nil {
		return err
	}

	dsn, ok := locator.SettingsDSN.Get()
	if !ok || dsn == "" {
		return errNoSettingsDSN
	}

	db, err := store.Open(opts.Context, dsn, opts.Logger.GetChildLogger("store"))
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db, locator.SettingsScope.OrElse(config.DefaultScope))
}

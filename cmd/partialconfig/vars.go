package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appetrosyan/partial-config/internal/config"
)

func newVarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the environment variables read for each setting",
		Long: `vars prints one line per configuration field with the environment
variables it is read from. When several are listed they must agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars, err := config.Variables()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tVARIABLES")
			for _, v := range vars {
				fmt.Fprintf(w, "%s\t%s\n", v.Field, strings.Join(v.Names, ", "))
			}
			return w.Flush()
		},
	}
}

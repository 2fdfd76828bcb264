package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRolesCmd(engine engineFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List roles and levels in the requirement catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := engine()
			if err != nil {
				return err
			}
			catalog := e.Catalog()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ROLE\tLEVEL\tMIN WORDS\tREQUIRED")
			for _, role := range catalog.Roles() {
				for _, level := range catalog.Levels(role) {
					p := catalog.Resolve(role, level)
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", role, level, p.MinWords, strings.Join(p.RequiredSkills.Sorted(), ", "))
				}
			}
			return tw.Flush()
		},
	}
}

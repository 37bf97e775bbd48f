package main

import (
	"os"

	"github.com/samuelfneumann/minegrid/config"
	"github.com/samuelfneumann/minegrid/render"
	"github.com/spf13/cobra"
)

// MapCommand returns the command that prints the layout a configuration
// generates, without teaching
func MapCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the grid generated by the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(envFiles()...)
			if err != nil {
				return err
			}
			flags.apply(cmd, &c)

			g, _, err := c.Create()
			if err != nil {
				return err
			}
			return render.Fprint(os.Stdout, g, nil, !noColor)
		},
	}
	flags.register(cmd)
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"object-builder/internal/schema"
)

func newFlattenCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <schema>",
		Short: "List every field path in a source schema",
		Example: `  # Print sorted field path options
  objectbuilder flatten ./schema.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			c, err := opts.newConfigurator()
			if err != nil {
				return err
			}

			if err := c.SetSchema(tree); err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), c.Options())
		},
	}
}

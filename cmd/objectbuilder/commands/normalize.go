package commands

import (
	"github.com/spf13/cobra"

	"object-builder/internal/config"
)

func newDefaultCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the configuration used before one exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newConfigurator()
			if err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), c.DefaultShape())
		},
	}
}

func newNormalizeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <config>",
		Short: "Rewrite a configuration in its canonical shape",
		Long: `Load a configuration, enrich it for editing, then emit it in the canonical
shape. Derived "flattened" values and any other per-field keys are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}

			c, err := opts.newConfigurator()
			if err != nil {
				return err
			}

			c.SetDraft(draft)
			opts.dump(cmd.ErrOrStderr(), c)

			return opts.write(cmd.OutOrStdout(), c.Outbound())
		},
	}
}

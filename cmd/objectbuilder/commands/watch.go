package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"object-builder/internal/diagnostic"
	"object-builder/internal/watch"
)

func newWatchCommand(opts *globalOptions) *cobra.Command {
	var (
		schemaPath string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate whenever the schema or configuration changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newConfigurator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := watch.New(c, schemaPath, configPath,
				watch.WithLogger(log.Logger),
				watch.WithReloadFunc(func(res *diagnostic.Diagnostics, err error) {
					if err != nil {
						return
					}

					printDiagnostics(out, res)
				}),
			)

			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "source schema file")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

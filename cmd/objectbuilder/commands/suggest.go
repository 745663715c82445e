package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCommand(opts *globalOptions) *cobra.Command {
	var (
		schemaPath string
		configPath string
		index      int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest source paths for a field based on its name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, draft, err := opts.load(schemaPath, configPath)
			if err != nil {
				return err
			}

			c.SetDraft(draft)

			if index < 0 || index >= len(draft.Fields) {
				return fmt.Errorf("field index %d out of range (have %d fields)", index, len(draft.Fields))
			}

			suggestions := c.SuggestSourcePaths(index, limit)
			if suggestions == nil {
				suggestions = []string{}
			}

			return opts.write(cmd.OutOrStdout(), suggestions)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "source schema file")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file")
	cmd.Flags().IntVar(&index, "index", 0, "index of the field to suggest for")
	cmd.Flags().IntVarP(&limit, "limit", "n", 3, "maximum number of suggestions")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

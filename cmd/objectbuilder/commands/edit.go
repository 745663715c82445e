package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"object-builder/internal/config"
)

func newEditCommand(opts *globalOptions) *cobra.Command {
	var (
		schemaPath string
		configPath string
		name       string
		addFields  []string
		removes    []int
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply edits to a configuration and emit the result",
		Long: `Apply edits in order: removals (in the order given), then added fields,
then the result name. Removing an index that does not exist is ignored.`,
		Example: `  # Add a field and rename the object
  objectbuilder edit --schema schema.yaml --config config.yaml \
    --add-field email=Account::Owner::Email --name Contact --out config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, draft, err := opts.load(schemaPath, configPath)
			if err != nil {
				return err
			}

			c.SetDraft(draft)
			c.Activate()

			for _, i := range removes {
				c.RemoveField(i)
			}

			for _, spec := range addFields {
				fieldName, path, ok := strings.Cut(spec, "=")
				if !ok {
					return fmt.Errorf("invalid --add-field %q (want name=Path::To::Field)", spec)
				}

				c.AddField()
				last := len(c.Draft().Fields) - 1
				c.RenameField(last, fieldName)
				c.SetSourcePath(last, path)
			}

			if cmd.Flags().Changed("name") {
				c.SetResultName(name)
			}

			opts.dump(cmd.ErrOrStderr(), c)

			res := c.Validate()
			logDiagnostics(log.Logger, res)

			log.Debug().Int("fields", len(c.Draft().Fields)).Bool("valid", res.IsValid()).Msg("Edited configuration")

			if outPath != "" {
				return config.WriteFile(c.Outbound(), outPath)
			}

			return opts.write(cmd.OutOrStdout(), c.Outbound())
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "source schema file")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file")
	cmd.Flags().StringVar(&name, "name", "", "new result name")
	cmd.Flags().StringArrayVar(&addFields, "add-field", nil, "add a field as name=Path::To::Field (repeatable)")
	cmd.Flags().IntSliceVar(&removes, "remove", nil, "remove the field at this index (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

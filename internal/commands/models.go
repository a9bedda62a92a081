package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zamanilabs/zamani-demo/internal/models"
)

// NewModelsCmd creates the models command
func NewModelsCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	return &cobra.Command{
		Use:   "models",
		Short: "List the models offered by the dropdown",
		Long: `List the model catalog in dropdown order. The model selected at start
is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, deps)
			if err != nil {
				return err
			}

			current := color.New(color.FgGreen, color.Bold)
			for _, name := range models.ModelCatalog() {
				if name == cfg.DefaultModel {
					fmt.Fprintln(cmd.OutOrStdout(), current.Sprint("* "+name))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), "  "+name)
			}
			return nil
		},
	}
}

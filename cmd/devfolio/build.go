package devfolio

import (
	"fmt"
	"os"

	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/site"
	"github.com/spf13/cobra"
)

var outDir string

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:              "build",
	Short:            "Export the portfolio as static files",
	Long:             `Render the page, its assets and JSON copies of the projects and skills into a directory that any static host can serve.`,
	PersistentPreRun: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		profile, err := loadProfile(contentPath)
		if err != nil {
			return err
		}

		if err := site.Build(cmd.Context(), profile, outDir, os.Stderr); err != nil {
			return fmt.Errorf("could not export site: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Site written to %s\n", outDir)

		return nil
	},
}

func loadProfile(path string) (*model.Profile, error) {
	store, err := content.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("could not load content: %w", err)
	}

	return store.Profile(), nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	addContentFlag(buildCmd)

	buildCmd.Flags().StringVarP(&outDir, "out", "o", "./dist", "Directory to write the site to")
}

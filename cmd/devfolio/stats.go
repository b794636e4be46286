package devfolio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/okbaghel/devfolio/db"
	"github.com/okbaghel/devfolio/model"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:              "stats",
	Short:            "Print visit statistics",
	Long:             `Summarise the page views recorded by "devfolio serve --storage".`,
	PersistentPreRun: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStats(cmd.OutOrStdout(), storagePath)
	},
}

// runStats reads an existing visit database. It never creates the file and
// never prunes, so looking at stats does not change them.
func runStats(out io.Writer, path string) error {
	if path == "" {
		return errors.New("no storage configured, pass --storage")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}

	storage, err := db.ConnectDB(path)
	if err != nil {
		return fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}
	defer storage.Close()

	summary, err := storage.Summary()
	if err != nil {
		return err
	}

	return printSummary(out, summary)
}

func printSummary(out io.Writer, summary model.VisitSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Total views\t%d\n", summary.Total)
	fmt.Fprintf(w, "Unique visitors\t%d\n", summary.Unique)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PATH\tVIEWS")

	for _, p := range summary.Paths {
		fmt.Fprintf(w, "%s\t%d\n", p.Path, p.Count)
	}

	return w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&storagePath, "storage", "s", "",
		"SQLite file with visit statistics")
}


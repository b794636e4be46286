package devfolio

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/db"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/web"
	"github.com/spf13/cobra"
)

var (
	contentPath string
	storagePath string
	serveCfg    = web.DefaultConfig()
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:              "serve",
	Short:            "Serve the portfolio",
	Long:             `Run the web server. In dev mode assets are not cached and the content file is reloaded when it changes.`,
	PersistentPreRun: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := content.NewStore(contentPath)
		if err != nil {
			return fmt.Errorf("could not load content: %w", err)
		}

		if serveCfg.Dev {
			if err := store.Watch(ctx); err != nil {
				return err
			}
		}

		storage, err := openStorage(storagePath)
		if err != nil {
			return err
		}
		defer storage.Close()

		return web.StartServer(ctx, serveCfg, store, storage)
	},
}

// openStorage returns the visit store; tracking is off without a path.
func openStorage(path string) (db.Storage, error) {
	if path == "" {
		return db.NopStorage{}, nil
	}

	storage, err := db.ConnectDB(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	pruned, err := storage.Prune(time.Now())
	if err != nil {
		storage.Close()

		return nil, err
	}

	slog.DebugContext(logging.PackageCtx("cmd"), "Pruned old visits", "count", pruned)

	return storage, nil
}

func addContentFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&contentPath, "content", "c", "",
		"YAML file with the portfolio content (built-in content when empty)")
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addContentFlag(serveCmd)

	serveCmd.Flags().IntVarP(&serveCfg.Port, "port", "p", serveCfg.Port,
		"Port on which server should be watching")
	serveCmd.Flags().BoolVar(&serveCfg.Dev, "dev", false,
		"Enable developer mode")
	serveCmd.Flags().StringVarP(&storagePath, "storage", "s", "",
		"SQLite file for visit statistics (tracking disabled when empty)")
	serveCmd.Flags().DurationVar(&serveCfg.TypingDelay, "typing-delay", 0,
		"Delay between revealed characters of the hero terminal (content value when 0)")
	serveCmd.Flags().Float64Var(&serveCfg.RateLimit, "rate-limit", serveCfg.RateLimit,
		"Requests per second allowed per client")
	serveCmd.Flags().IntVar(&serveCfg.RateBurst, "rate-burst", serveCfg.RateBurst,
		"Request burst allowed per client")
	serveCmd.Flags().DurationVar(&serveCfg.SessionTTL, "session-ttl", serveCfg.SessionTTL,
		"How long an idle menu session is kept")
	serveCmd.Flags().StringVar(&serveCfg.VisitSalt, "visit-salt", "",
		"Salt mixed into hashed visitor addresses")
}


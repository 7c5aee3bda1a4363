package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/critapp/crit/internal/api"
	"github.com/critapp/crit/internal/daemon"
	"github.com/critapp/crit/internal/store"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stand-in review service",
	Long: `Run a local HTTP service that implements the review API with
deterministic fabricated analysis. Useful for trying crit without a
real service: point crit at it with --base-url or CRIT_BASE_URL.
By default it listens on port 8000. Use --port to change it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stubRun()
	},
}

func init() {
	stubCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	stubCmd.Flags().String("db", "", "SQLite database path (default ~/.config/crit/stub.db)")
	_ = viper.BindPFlag("stub.port", stubCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("stub.db_path", stubCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(stubCmd)
}

func stubRun() error {
	dbPath := viper.GetString("stub.db_path")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// One stub per database. A stale PID file from a crashed run is ignored.
	pf := daemon.NewPIDFile(dbPath + ".pid")
	if pid, running := pf.IsRunning(); running {
		return fmt.Errorf("stub already running (pid %d)", pid)
	}
	if err := pf.Write(); err != nil {
		return fmt.Errorf("write PID file: %w", err)
	}
	defer func() { _ = pf.Remove() }()

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("stub.port"))
	ui.Info("Review service listening at http://localhost%s (db: %s)", addr, dbPath)
	return http.ListenAndServe(addr, api.NewServer(s).Router())
}

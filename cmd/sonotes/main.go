package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"sonotes/internal/host"
	"sonotes/internal/logging"
	"sonotes/internal/models"
	"sonotes/internal/storage"
	"sonotes/internal/store"
	"sonotes/internal/transfer"
	"sonotes/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sonotes",
	Short: "Sticky notes on an infinite canvas, in your terminal",
	Long: `sonotes keeps freely placed sticky notes on boards over an
infinite canvas. Notes persist locally through a crash-safe two-tier
store and can be exported to and imported from plain JSON files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sonotes %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export every board and note to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		content, err := transfer.ExportAll(env.store.Snapshot())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if !host.SaveFile(content, args[0]) {
			return fmt.Errorf("export: could not write %s", args[0])
		}
		fmt.Printf("exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import boards and notes from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		content, ok := host.OpenFile(args[0])
		if !ok {
			return fmt.Errorf("import: could not read %s", args[0])
		}
		boards, notes, ok := transfer.Import(content)
		if !ok {
			return fmt.Errorf("import: %s is not a valid export file", args[0])
		}
		env.store.MergeImport(boards, notes)
		fmt.Printf("imported %d boards, %d notes\n", len(boards), len(notes))
		return nil
	},
}

var resetCacheCmd = &cobra.Command{
	Use:   "reset-cache",
	Short: "Clear the write-ahead cache, keeping the durable snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		cache, err := storage.OpenCache(filepath.Join(dir, storage.CacheFileName))
		if err != nil {
			return fmt.Errorf("reset-cache: %w", err)
		}
		defer cache.Close()
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("reset-cache: %w", err)
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data-dir", "", "data directory (default: $XDG_DATA_HOME/sonotes)")
	rootCmd.PersistentFlags().String("theme", "", "theme override: light, dark, or system")
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCacheCmd)
}

func initConfig() {
	viper.SetEnvPrefix("sonotes")
	viper.AutomaticEnv()
}

func dataDir() (string, error) {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir, nil
	}
	return host.DefaultDataDir()
}

// env is the assembled persistence stack shared by the TUI and the
// data subcommands.
type env struct {
	host  *host.Host
	log   *zap.Logger
	cache *storage.Cache
	sched *storage.Scheduler
	store *store.Store
}

func newEnv() (*env, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	h, err := host.New(dir)
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}

	log, err := logging.New(h.Dir())
	if err != nil {
		log = logging.Nop()
	}

	cache, err := storage.OpenCache(filepath.Join(h.Dir(), storage.CacheFileName))
	if err != nil {
		// A corrupt or locked cache must not keep the app from the
		// durable snapshot.
		log.Warn("cache unavailable, continuing without it", zap.Error(err))
		cache = nil
	}

	disk := storage.NewDisk(h)
	sched := storage.NewScheduler(cache, disk, log)
	data := storage.Rehydrate(cache, disk, sched, log)

	if mode := viper.GetString("theme"); mode != "" {
		data.Config.ThemeMode = models.ThemeMode(mode)
	}

	return &env{
		host:  h,
		log:   log,
		cache: cache,
		sched: sched,
		store: store.New(data, sched, log),
	}, nil
}

func (e *env) close() {
	e.sched.Close()
	e.cache.Close()
	e.log.Sync()
}

func runTUI() error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.close()

	app := ui.NewApp(env.store)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

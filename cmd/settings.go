package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/mathtrainer/internal/store"
)

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("MATHTRAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mathtrainer")
	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "mathtrainer"))
	}
	v.AddConfigPath("$HOME/.config/mathtrainer")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// setupLogging installs the default slog logger. The TUI owns the terminal,
// so interactive commands log to a file; the returned func closes it.
func setupLogging(v *viper.Viper, interactive bool) (func(), error) {
	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	cleanup := func() {}
	if interactive {
		path := v.GetString("log-file")
		if path == "" {
			p, err := defaultLogPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}

	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(out, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(out, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
	return cleanup, nil
}

// defaultLogPath returns $XDG_STATE_HOME/mathtrainer/mathtrainer.log,
// falling back to ~/.local/state.
func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "mathtrainer", "mathtrainer.log"), nil
}

// resolveDBPath returns the database path using --db (or the db key of a
// config file) first, then MATHTRAINER_DB, then the default XDG path.
func resolveDBPath(v *viper.Viper) (string, error) {
	if p := v.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(v *viper.Viper) (*store.Store, error) {
	dbPath, err := resolveDBPath(v)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", dbPath)
	return st.WithLogger(slog.Default()), nil
}

// Package main provides the CLI entrypoint for onitore.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/onitore/internal/audio"
	"github.com/verte-zerg/onitore/internal/config"
	"github.com/verte-zerg/onitore/internal/generator"
	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/session"
	"github.com/verte-zerg/onitore/internal/stats"
	"github.com/verte-zerg/onitore/internal/tui"
)

const defaultLevel = 3

// bellCues are the cues that ring the terminal bell. The bell has one sound,
// so only round results use it.
var bellCues = []model.Cue{model.CueCorrect, model.CueWrong, model.CueKeep}

var (
	drillLevel    int
	drillDuration int
	drillMute     bool
	drillSeed     int64
	drillLog      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "onitore",
		Short:         "Reverse digit span working-memory drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().IntVar(&drillLevel, "level", defaultLevel, "starting number of digits (3-20)")
	rootCmd.Flags().IntVar(&drillDuration, "duration", session.DefaultDurationSeconds, "session length in seconds")
	rootCmd.Flags().BoolVar(&drillMute, "mute", false, "start with sound off")
	rootCmd.Flags().Int64Var(&drillSeed, "seed", 0, "seed for the digit generator (0: random)")
	rootCmd.Flags().StringVar(&drillLog, "log", "", "write a debug log to this file")
	rootCmd.Flags().Lookup("log").NoOptDefVal = config.DefaultLogPath()

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging(drillLog)
	if err != nil {
		return err
	}
	defer closeLog()

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	drill := tui.NewModel(cfg, gen, audio.ForTerminal(os.Stderr, bellCues...))
	program := tea.NewProgram(drill, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final := drill.State()
	if final.Stats.TotalAttempts == 0 {
		return nil
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), final.Stats); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// resolveConfig merges flags over the file and env values. A flag set on the
// command line always wins.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	level := drillLevel
	duration := drillDuration
	sound := !drillMute

	applyIntConfig(cmd, "level", &level, fileCfg.Drill.Level)
	applyIntConfig(cmd, "duration", &duration, fileCfg.Drill.Duration)
	applyBoolConfig(cmd, "mute", &sound, fileCfg.Drill.Sound)

	return model.Config{
		Level:           level,
		DurationSeconds: duration,
		Sound:           sound,
		Seed:            drillSeed,
	}
}

// setupLogging routes the standard logger to path, or discards it when path
// is empty.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "onitore")
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config file from the template unless it
// already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logErrf("Created %s\n", path)
	return nil
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, line := range tui.RulesText() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# onitore configuration
# Uncomment a value to enable it. CLI flags and ONITORE_* env vars override config values.

[drill]
# level = %d              # Starting number of digits (3-20)
# duration = %d         # Session length in seconds (60, 180, 300 or any value up to 3600)
# sound = true           # Terminal bell cues
`,
		defaultLevel,
		session.DefaultDurationSeconds,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

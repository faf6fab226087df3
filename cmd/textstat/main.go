// Package main provides the CLI entrypoint for textstat.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/textstat/internal/config"
	"github.com/verte-zerg/textstat/internal/loader"
	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/statsui"
)

const defaultTopN = 10

var (
	configPath string
	verbose    bool

	countLines      bool
	countChars      bool
	countEmptyLines bool
	countFreq       bool

	topN int
)

var log = logrus.New()

func main() {
	os.Exit(runRoot(newRootCmd()))
}

// runRoot executes cmd and returns the process exit status.
// Errors other than a missing file are written to the command's stderr.
func runRoot(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, loader.ErrFileNotFound) {
		logErrf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "textstat <file_path>",
		Short:             "Analyze text file for character and line statistics",
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE:              runAnalyzeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/textstat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.Flags().BoolVar(&countLines, "count-lines", false, "Count lines in the text.")
	rootCmd.Flags().BoolVar(&countChars, "count-chars", false, "Count characters in the text.")
	rootCmd.Flags().BoolVar(&countEmptyLines, "count-empty-lines", false, "Count empty lines in the text.")
	rootCmd.Flags().BoolVar(&countFreq, "count-freq", false, "Count character frequency in the text.")

	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "verbose", &verbose, fileCfg.Report.Verbose)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "count-lines", &countLines, fileCfg.Report.CountLines)
	applyBoolConfig(cmd, "count-chars", &countChars, fileCfg.Report.CountChars)
	applyBoolConfig(cmd, "count-empty-lines", &countEmptyLines, fileCfg.Report.CountEmptyLines)
	applyBoolConfig(cmd, "count-freq", &countFreq, fileCfg.Report.CountFreq)

	sections := model.ReportSections{
		Chars:      countChars,
		Lines:      countLines,
		EmptyLines: countEmptyLines,
		Freq:       countFreq,
	}
	log.WithField("sections", fmt.Sprintf("%+v", sections)).Debug("selected report sections")

	st, err := analyzeFile(cmd.OutOrStdout(), args[0])
	if err != nil {
		return err
	}
	if err := stats.Render(cmd.OutOrStdout(), st, sections); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top <file_path>",
		Short: "Show the most frequent characters",
		Args:  cobra.ExactArgs(1),
		RunE:  runTopCmd,
	}
	cmd.Flags().IntVar(&topN, "n", defaultTopN, "number of characters to show (0 for all)")
	return cmd
}

func runTopCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "n", &topN, fileCfg.Top.N)
	if topN < 0 {
		return fmt.Errorf("--n must be >= 0")
	}

	st, err := analyzeFile(cmd.OutOrStdout(), args[0])
	if err != nil {
		return err
	}
	if err := stats.RenderTop(cmd.OutOrStdout(), st, topN); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file_path>",
		Short: "Browse statistics in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  runViewCmd,
	}
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return fmt.Errorf("view requires an interactive terminal")
	}
	st, err := analyzeFile(cmd.OutOrStdout(), args[0])
	if err != nil {
		return err
	}
	program := tea.NewProgram(statsui.NewModel(args[0], st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
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
	path := resolveConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		log.WithField("path", path).Debug("wrote config template")
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

// analyzeFile loads and analyzes path. A missing file is reported on out.
func analyzeFile(out io.Writer, path string) (model.TextStatistics, error) {
	text, err := loader.NewLocal(loader.WithLogger(log)).Load(path)
	if err != nil {
		if errors.Is(err, loader.ErrFileNotFound) {
			if _, werr := fmt.Fprintf(out, "File not found: %s\n", path); werr != nil {
				return model.TextStatistics{}, werr
			}
		}
		return model.TextStatistics{}, err
	}
	st := stats.Analyze(text)
	log.WithFields(logrus.Fields{
		"chars": st.CharacterCount,
		"lines": st.LineCount,
	}).Debug("analyzed file")
	return st, nil
}

func loadFileConfig() (config.FileConfig, error) {
	path := resolveConfigPath()
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	log.WithField("path", path).Debug("loaded config")
	return cfg, nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textstat configuration
# Uncomment a value to enable it. CLI flags override config values.
# With no section selected, all sections are printed.

[report]
# count-lines = false         # Print the number of lines
# count-chars = false         # Print the number of characters
# count-empty-lines = false   # Print the number of empty lines
# count-freq = false          # Print the character frequency table
# verbose = false             # Log debug output to stderr

[top]
# n = %d                      # Characters shown by 'textstat top' (0 for all)
`, defaultTopN)
}

func logErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

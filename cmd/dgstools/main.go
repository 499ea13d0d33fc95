// Dgstools generates the reports used by the Director of Graduate Studies:
// TA assignments, student status and advising listings, registrar class
// lists, and questionnaire extracts. Each report pipeline registers itself
// and becomes a subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mark-caprio/dgstools/reports"

	_ "github.com/mark-caprio/dgstools/reports/assignments"
	_ "github.com/mark-caprio/dgstools/reports/classes"
	_ "github.com/mark-caprio/dgstools/reports/students"
	_ "github.com/mark-caprio/dgstools/reports/surveys"
)

// version is the application version, reported by the version subcommand.
const version = "1.0.0"

var (
	flagConfig    string
	flagOutputDir string
	flagLabel     string
	flagVerbose   bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "dgstools",
	Short:         "spreadsheet-to-report toolkit for the Director of Graduate Studies",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagVerbose {
			log, err = zap.NewDevelopment()
		} else {
			log, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the available reports and their configuration files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range reports.All() {
			fmt.Printf("%-24s %-28s %s\n", r.Name(), r.ConfigFile(), r.Synopsis())
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the dgstools version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

// reportCommand wraps a registered report as a subcommand.
func reportCommand(r reports.Report) *cobra.Command {
	return &cobra.Command{
		Use:   r.Name(),
		Short: r.Synopsis(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := flagConfig
			if configPath == "" {
				configPath = r.ConfigFile()
			}
			ctx := &reports.Context{
				ConfigPath: configPath,
				OutputDir:  flagOutputDir,
				Version:    flagLabel,
				Log:        log,
			}
			return r.Run(ctx)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"configuration file (default: the report's standard filename)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "o", ".",
		"directory for generated report files")
	rootCmd.PersistentFlags().StringVarP(&flagLabel, "label", "l", "",
		"report version label (e.g. 2 for a second assignment pass)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(listCmd, versionCmd)
	for _, r := range reports.All() {
		rootCmd.AddCommand(reportCommand(r))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

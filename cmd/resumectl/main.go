// Command resumectl scores resumes offline and runs the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-analytics/internal/scoring"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Resume scoring toolkit",
		Long:          "resumectl scores PDF and DOCX resumes against role requirement profiles, matches them to job descriptions and serves the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("catalog", "", "YAML or JSON requirement catalog (overrides CATALOG_FILE)")
	_ = v.BindPFlag("CATALOG_FILE", root.PersistentFlags().Lookup("catalog"))

	engine := func() (*scoring.Engine, error) {
		path := v.GetString("CATALOG_FILE")
		if path == "" {
			return scoring.DefaultEngine(), nil
		}
		catalog, err := scoring.LoadCatalogFile(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		return scoring.NewEngine(nil, catalog), nil
	}

	root.AddCommand(
		newAnalyzeCmd(engine),
		newMatchCmd(engine),
		newCompareCmd(engine),
		newRolesCmd(engine),
		newServeCmd(),
		newMigrateCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

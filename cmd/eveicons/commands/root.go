// Package commands implements the CLI commands for the eveicons exporter.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/app"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/build"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

// CLI represents the command line interface for eveicons.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "eveicons",
		Short:         "Export EVE Online item type icons from the game's CDN",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("force_rebuild", false, "Recomposite every icon, ignoring the existing cache")
	rootCmd.PersistentFlags().Bool("skip_if_fresh", false, "Skip output when the icon cache is unchanged")
	rootCmd.PersistentFlags().Bool("use_magick", false, "Composite through the external 'magick' command instead of in-process")
	rootCmd.PersistentFlags().Bool("silent", false, "Log errors only")
	rootCmd.PersistentFlags().String("cache_folder", "cache", "Download cache directory for game resources and data export")
	rootCmd.PersistentFlags().String("icon_folder", "icons", "Icon cache directory")
	rootCmd.PersistentFlags().String("user_agent", "eveicons/"+build.Version, "User-Agent header for CDN requests")
	rootCmd.PersistentFlags().String("rules", "", "Classification rules override file (YAML)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServiceBundleCmd())
	rootCmd.AddCommand(c.newIECCmd())
	rootCmd.AddCommand(c.newWebDirCmd())
	rootCmd.AddCommand(c.newChecksumCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// runOptions assembles the run options shared by every subcommand from the
// persistent flags plus the given output mode.
func (c *CLI) runOptions(cmd *cobra.Command, mode domain.OutputMode) app.RunOptions {
	forceRebuild, _ := cmd.Flags().GetBool("force_rebuild")
	skipIfFresh, _ := cmd.Flags().GetBool("skip_if_fresh")
	useMagick, _ := cmd.Flags().GetBool("use_magick")
	silent, _ := cmd.Flags().GetBool("silent")
	cacheFolder, _ := cmd.Flags().GetString("cache_folder")
	iconFolder, _ := cmd.Flags().GetString("icon_folder")
	userAgent, _ := cmd.Flags().GetString("user_agent")
	rulesPath, _ := cmd.Flags().GetString("rules")

	return app.RunOptions{
		Mode:         mode,
		ForceRebuild: forceRebuild,
		SkipIfFresh:  skipIfFresh,
		UseMagick:    useMagick,
		Silent:       silent,
		CacheFolder:  cacheFolder,
		IconFolder:   iconFolder,
		UserAgent:    userAgent,
		RulesPath:    rulesPath,
	}
}

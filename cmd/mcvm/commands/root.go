// Package commands implements the CLI commands for mcvm.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mcvm/internal/app"
	"go.trai.ch/mcvm/internal/build"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/engine/updater"
)

// CLI represents the command line interface for mcvm.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	UpdateProfile(ctx context.Context, profileID string, opts app.UpdateOptions) (*updater.Report, error)
	ListPackages(profileID string) ([]app.PackageUsage, error)
	SyncPackages(ctx context.Context) (*app.SyncReport, error)
	PackageContents(ctx context.Context, id string) (*app.PackageContents, error)
	PackageInfo(ctx context.Context, id string) (*app.PackageInfo, error)
	Repositories(ctx context.Context) ([]domain.RepoInfo, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mcvm",
		Short:         "A package manager for Minecraft instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newProfileCmd())
	rootCmd.AddCommand(c.newPackageCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

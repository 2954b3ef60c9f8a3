package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mcvm/internal/app"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/ui/style"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package",
		Aliases: []string{"pkg"},
		Short:   "Inspect and sync packages",
	}
	cmd.AddCommand(c.newPackageListCmd())
	cmd.AddCommand(c.newPackageSyncCmd())
	cmd.AddCommand(c.newPackageCatCmd())
	cmd.AddCommand(c.newPackageInfoCmd())
	cmd.AddCommand(c.newRepositoryCmd())
	return cmd
}

func (c *CLI) newPackageListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the configured packages across all profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			profile, _ := cmd.Flags().GetString("profile")

			pkgs, err := c.app.ListPackages(profile)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			switch {
			case raw:
				for _, pkg := range pkgs {
					p.println(pkg.ID)
				}
			case profile != "":
				p.println(p.heading("Packages in profile " + profile + ":"))
				for _, pkg := range pkgs {
					p.println("  -", pkg.ID)
				}
			default:
				p.println(p.heading("Packages:"))
				for _, pkg := range pkgs {
					p.println(p.bold(pkg.ID))
					for _, prof := range pkg.Profiles {
						p.println("  -", p.muted(prof))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("raw", "r", false, "Print package ids without formatting")
	cmd.Flags().StringP("profile", "p", "", "Only list packages of this profile")
	return cmd
}

func (c *CLI) newPackageSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync package indexes with the package repositories",
		Long: "Sync all package indexes from remote repositories. They are cached locally " +
			"and every cached package definition is dropped and validated again.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.SyncPackages(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, inv := range report.Invalid {
				p.println(p.failure(style.Cross), inv.ID, p.muted("is invalid"))
			}
			p.println(p.success(style.Check), fmt.Sprintf("Synced repositories: %d packages, %d invalid", report.Packages, len(report.Invalid)))
			return nil
		},
	}
}

func (c *CLI) newPackageCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cat <package>",
		Aliases: []string{"print"},
		Short:   "Print the contents of a package",
		Long:    "Print the contents of any package. The package does not need to be installed, it only has to be in an index.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")

			contents, err := c.app.PackageContents(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				_, err = out.Write(contents.Data)
				return err
			}

			p := newPrinter(out)
			p.println(p.heading("Contents of package "+contents.ID+":"), p.muted("("+string(contents.ContentType)+")"))
			_, err = out.Write(contents.Data)
			if err == nil && !bytes.HasSuffix(contents.Data, []byte("\n")) {
				p.println()
			}
			return err
		},
	}
	cmd.Flags().BoolP("raw", "r", false, "Print the contents without formatting")
	return cmd
}

func (c *CLI) newPackageInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Print information about a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.app.PackageInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printInfo(newPrinter(cmd.OutOrStdout()), info)
			return nil
		},
	}
}

func printInfo(p *printer, info *app.PackageInfo) {
	meta := info.Metadata
	if meta == nil {
		meta = &domain.PackageMetadata{}
	}

	name := meta.Name
	if name == "" {
		name = info.ID
	}
	p.println(p.success("Package"), p.heading(name))
	if meta.Description != "" {
		p.println("  ", meta.Description)
	}
	if meta.LongDescription != "" {
		p.println("  ", meta.LongDescription)
	}

	p.field("ID", info.ID)
	p.field("Version", info.Version)
	p.field("Authors", strings.Join(meta.Authors, ", "))
	p.field("Package Maintainers", strings.Join(meta.Maintainers, ", "))
	p.field("Website", meta.Website)
	p.field("Support Link", meta.SupportLink)
	p.field("Documentation", meta.Documentation)
	p.field("Source", meta.Source)
	p.field("Issue Tracker", meta.Issues)
	p.field("Community Link", meta.Community)
	p.field("License", meta.License)

	if props := info.Properties; props != nil {
		p.field("Features", strings.Join(props.Features, ", "))
		p.field("Default Features", strings.Join(props.DefaultFeatures, ", "))
		p.field("Tags", strings.Join(props.Tags, ", "))
	}

	id := domain.NewPackageID(info.ID)
	for _, f := range info.Flags {
		p.warn("%s", f.Warning(id))
	}
}

func (c *CLI) newRepositoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repository",
		Aliases: []string{"repo"},
		Short:   "Query the configured package repositories",
	}
	cmd.AddCommand(c.newRepositoryListCmd())
	return cmd
}

func (c *CLI) newRepositoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the configured package repositories in priority order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetBool("raw")

			repos, err := c.app.Repositories(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if raw {
				for _, r := range repos {
					p.println(r.ID)
				}
				return nil
			}
			p.println(p.heading("Repositories:"))
			for _, r := range repos {
				p.println(p.bold(r.ID), p.muted("-"), r.URL)
				if r.Metadata.Description != "" {
					p.println("  ", p.muted(r.Metadata.Description))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("raw", "r", false, "Print repository ids without formatting")
	return cmd
}

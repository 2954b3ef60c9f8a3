package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mcvm/internal/app"
	"go.trai.ch/mcvm/internal/engine/updater"
	"go.trai.ch/mcvm/internal/ui/style"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"prof"},
		Short:   "Manage profiles",
	}
	cmd.AddCommand(c.newProfileUpdateCmd())
	return cmd
}

func (c *CLI) newProfileUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <profile>",
		Short: "Install and update the packages of every instance in a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			report, err := c.app.UpdateProfile(cmd.Context(), args[0], app.UpdateOptions{Force: force})
			if report != nil {
				printReport(newPrinter(cmd.OutOrStdout()), report)
			}
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Reinstall addons even when they are up to date")
	return cmd
}

func printReport(p *printer, r *updater.Report) {
	for _, a := range r.Installed {
		line := fmt.Sprintf("%s/%s", a.Package, a.Addon)
		if a.Version != "" {
			line += " " + a.Version
		}
		p.println(p.success(style.Check), line, p.muted("-> "+a.Instance))
	}
	for _, f := range r.Removed {
		p.println(p.muted(style.Tilde), "removed", f)
	}
	for _, n := range r.Notices {
		p.println(p.notice(style.Warning), p.bold(n.Package.String()+":"), n.Message)
	}
	for _, f := range r.Failures {
		unit := f.Instance
		if f.Package != "" {
			unit += "/" + f.Package
		}
		p.println(p.failure(style.Cross), unit, p.muted("failed"))
	}
	if r.VersionChanged {
		p.warn("the game version of profile '%s' changed", r.Profile)
	}

	summary := fmt.Sprintf("%d installed, %d up to date, %d removed", len(r.Installed), r.UpToDate, len(r.Removed))
	if r.Failed() {
		p.println(p.failure("Profile "+r.Profile+" updated with failures:"), summary)
		return
	}
	p.println(p.heading("Profile "+r.Profile+" updated:"), summary)
}

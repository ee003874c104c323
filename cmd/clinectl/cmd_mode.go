// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

func newModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Switch between plan and act mode",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "plan",
			Short: "Switch to plan mode",
			Args:  cobra.NoArgs,
			RunE:  runSimple((*automation.Client).SwitchToPlanMode),
		},
		&cobra.Command{
			Use:   "act",
			Short: "Switch to act mode",
			Args:  cobra.NoArgs,
			RunE:  runSimple((*automation.Client).SwitchToActMode),
		},
	)
	return cmd
}

// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

func newTabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tab",
		Short: "Manage Cline editor tabs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Open Cline in a new tab",
		Args:  cobra.NoArgs,
		RunE:  runSimple((*automation.Client).OpenNewTab),
	})
	return cmd
}

func newClickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "click",
		Short: "Click a button in the Cline view",
	}

	buttons := []struct {
		use   string
		short string
		call  func(*automation.Client, context.Context) map[string]any
	}{
		{"plus", "Click the plus button", (*automation.Client).ClickPlusButton},
		{"mcp", "Click the MCP button", (*automation.Client).ClickMCPButton},
		{"settings", "Click the settings button", (*automation.Client).ClickSettingsButton},
		{"history", "Click the history button", (*automation.Client).ClickHistoryButton},
		{"account", "Click the account button", (*automation.Client).ClickAccountButton},
	}
	for _, b := range buttons {
		cmd.AddCommand(&cobra.Command{
			Use:   b.use,
			Short: b.short,
			Args:  cobra.NoArgs,
			RunE:  runSimple(b.call),
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select <button-id>",
		Short: "Click an option button by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.ClickSelectButton(cmd.Context(), args[0]))
			return nil
		},
	})

	return cmd
}

// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Feed context into the chat input",
	}
	cmd.AddCommand(newChatAddCmd(), newChatTerminalCmd())
	return cmd
}

func newChatAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add the selected code range to the chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.AddToChat(cmd.Context(), start, end))
			return nil
		},
	}
	addRangeFlags(cmd)
	return cmd
}

func newChatTerminalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terminal",
		Short: "Add the terminal output to the chat",
		Args:  cobra.NoArgs,
		RunE:  runSimple((*automation.Client).AddTerminalOutput),
	}
}

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Ask Cline to fix the selected code range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.FixWithCline(cmd.Context(), start, end))
			return nil
		},
	}
	addRangeFlags(cmd)
	return cmd
}

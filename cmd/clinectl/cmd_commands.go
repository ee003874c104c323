// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the server supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.ListCommands(cmd.Context()))
			return nil
		},
	}
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [json-args]",
		Short: "Send a raw command, optionally with JSON args",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			var cmdArgs any
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &cmdArgs); err != nil {
					return fmt.Errorf("invalid JSON args: %w", err)
				}
			}

			printJSON(client.Execute(cmd.Context(), args[0], cmdArgs))
			return nil
		},
	}
}

// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// The demo sequence mirrors the original automation script: list commands,
// switch to plan mode, start a task, read its status, send a follow-up.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "demo",
		Short:  "Run a fixed example sequence against the server",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			fmt.Println("Available commands:")
			printJSON(client.ListCommands(ctx))

			fmt.Println("\nSwitching to plan mode:")
			printJSON(client.SwitchToPlanMode(ctx))

			fmt.Println("\nStarting a new task:")
			printJSON(client.StartNewTask(ctx, "Build a simple calculator", nil))

			fmt.Println("\nTask status:")
			printJSON(client.GetTaskStatus(ctx))

			fmt.Println("\nSending text:")
			printJSON(client.SendText(ctx, "Please use Go for the implementation", false))

			return nil
		},
	}
}

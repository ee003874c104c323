// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Start tasks and inspect their status",
	}
	cmd.AddCommand(newTaskNewCmd(), newTaskStatusCmd())
	return cmd
}

func newTaskNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <text>",
		Short: "Start a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, _ := cmd.Flags().GetStringArray("image")
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.StartNewTask(cmd.Context(), args[0], images))
			return nil
		},
	}
	cmd.Flags().StringArray("image", nil, "Image to attach (repeatable)")
	return cmd
}

func newTaskStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current task status",
		Args:  cobra.NoArgs,
		RunE:  runSimple((*automation.Client).GetTaskStatus),
	}
}

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Type text into the chat input and submit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newTask, _ := cmd.Flags().GetBool("new-task")
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			printJSON(client.SendText(cmd.Context(), args[0], newTask))
			return nil
		},
	}
	cmd.Flags().Bool("new-task", false, "Start a new task instead of continuing the current one")
	return cmd
}

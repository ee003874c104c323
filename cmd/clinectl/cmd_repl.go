// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive command shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			return runRepl(cmd, client)
		},
	}
}

func runRepl(cmd *cobra.Command, client *automation.Client) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cline> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".clinectl_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("error initializing readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("Connected to %s (Ctrl+C to exit)\n", client.BaseURL())
	fmt.Println("  <command> [json-args]  - send a command")
	fmt.Println("  commands               - list server commands")
	fmt.Println("  exit                   - leave the shell")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			return nil
		}

		if input == "commands" {
			printJSON(client.ListCommands(cmd.Context()))
			continue
		}

		name, rest, _ := strings.Cut(input, " ")
		var cmdArgs any
		if rest = strings.TrimSpace(rest); rest != "" {
			if err := json.Unmarshal([]byte(rest), &cmdArgs); err != nil {
				fmt.Printf("Invalid JSON args: %v\n", err)
				continue
			}
		}

		printJSON(client.Execute(cmd.Context(), name, cmdArgs))
	}
}

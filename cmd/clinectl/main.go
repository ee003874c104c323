// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
	"github.com/cline-tools/clinectl/pkg/config"
	"github.com/cline-tools/clinectl/pkg/logger"
)

var (
	version   = "dev"
	gitCommit string
)

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func printVersion() {
	fmt.Printf("clinectl %s\n", formatVersion())
	fmt.Printf("  Go: %s\n", runtime.Version())
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clinectl",
		Short:         "Control the Cline extension from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger.SetLevel(logger.DEBUG)
			}
		},
	}

	cmd.PersistentFlags().String("base-url", "", "Automation server address (default "+automation.DefaultBaseURL+")")
	cmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.AddCommand(
		newCommandsCmd(),
		newExecCmd(),
		newTabCmd(),
		newClickCmd(),
		newChatCmd(),
		newFixCmd(),
		newModeCmd(),
		newTaskCmd(),
		newSendCmd(),
		newReplCmd(),
		newDemoCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion()
		},
	}
}

// newClient builds the automation client from config file, environment and
// flags, in ascending precedence.
func newClient(cmd *cobra.Command) (*automation.Client, error) {
	cfg, err := config.LoadConfig(config.ResolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
		cfg.TimeoutSeconds = timeout
	}

	return automation.New(cfg.BaseURL, automation.WithTimeout(cfg.Timeout())), nil
}

// runSimple wraps a no-argument client method into a cobra RunE.
func runSimple(call func(*automation.Client, context.Context) map[string]any) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		printJSON(call(client, cmd.Context()))
		return nil
	}
}

// printJSON prints the server response indented, the same way the original
// automation script did.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

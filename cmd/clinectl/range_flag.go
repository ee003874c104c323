// clinectl - command line client for the Cline automation server
// License: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cline-tools/clinectl/pkg/automation"
)

// parsePosition turns a "line:character" flag value into a Position.
func parsePosition(value string) (automation.Position, error) {
	lineStr, charStr, ok := strings.Cut(value, ":")
	if !ok {
		return automation.Position{}, fmt.Errorf("invalid position %q, want line:character", value)
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return automation.Position{}, fmt.Errorf("invalid line in position %q: %w", value, err)
	}
	character, err := strconv.Atoi(charStr)
	if err != nil {
		return automation.Position{}, fmt.Errorf("invalid character in position %q: %w", value, err)
	}

	return automation.Position{Line: line, Character: character}, nil
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Selection start as line:character")
	cmd.MarkFlagRequired("start")
	cmd.Flags().String("end", "", "Selection end as line:character")
	cmd.MarkFlagRequired("end")
}

func rangeFromFlags(cmd *cobra.Command) (start, end automation.Position, err error) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")

	start, err = parsePosition(startStr)
	if err != nil {
		return start, end, err
	}
	end, err = parsePosition(endStr)
	return start, end, err
}

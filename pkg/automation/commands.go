package automation

import "context"

// The methods below are the fixed command catalog of the automation
// server. Command strings and argument shapes are the wire protocol; do
// not rename them. None of them validate their arguments, the server does.

// OpenNewTab opens Cline in a new editor tab.
func (c *Client) OpenNewTab(ctx context.Context) map[string]any {
	return c.Execute(ctx, "openNewTab", nil)
}

// ClickPlusButton clicks the plus button in the Cline view.
func (c *Client) ClickPlusButton(ctx context.Context) map[string]any {
	return c.Execute(ctx, "clickPlusButton", nil)
}

// ClickMCPButton clicks the MCP button.
func (c *Client) ClickMCPButton(ctx context.Context) map[string]any {
	return c.Execute(ctx, "clickMCPButton", nil)
}

// ClickSettingsButton clicks the settings button.
func (c *Client) ClickSettingsButton(ctx context.Context) map[string]any {
	return c.Execute(ctx, "clickSettingsButton", nil)
}

// ClickHistoryButton clicks the history button.
func (c *Client) ClickHistoryButton(ctx context.Context) map[string]any {
	return c.Execute(ctx, "clickHistoryButton", nil)
}

// ClickAccountButton clicks the account button.
func (c *Client) ClickAccountButton(ctx context.Context) map[string]any {
	return c.Execute(ctx, "clickAccountButton", nil)
}

// AddToChat adds the selection between start and end to the chat input.
func (c *Client) AddToChat(ctx context.Context, start, end Position) map[string]any {
	return c.Execute(ctx, "addToChat", rangeArgs{
		Range: Range{Start: start, End: end},
	})
}

// AddTerminalOutput adds the active terminal's output to the chat input.
func (c *Client) AddTerminalOutput(ctx context.Context) map[string]any {
	return c.Execute(ctx, "addTerminalOutput", nil)
}

// FixWithCline asks Cline to fix the code between start and end.
func (c *Client) FixWithCline(ctx context.Context, start, end Position) map[string]any {
	return c.Execute(ctx, "fixWithCline", rangeArgs{
		Range: Range{Start: start, End: end},
	})
}

// SwitchToPlanMode switches the agent to plan mode.
func (c *Client) SwitchToPlanMode(ctx context.Context) map[string]any {
	return c.Execute(ctx, "switchToPlanMode", nil)
}

// SwitchToActMode switches the agent to act mode.
func (c *Client) SwitchToActMode(ctx context.Context) map[string]any {
	return c.Execute(ctx, "switchToActMode", nil)
}

// ClickSelectButton clicks the option button identified by buttonID.
func (c *Client) ClickSelectButton(ctx context.Context, buttonID string) map[string]any {
	return c.Execute(ctx, "clickSelectButton", selectButtonArgs{ButtonID: buttonID})
}

// GetTaskStatus returns the state of the current task.
func (c *Client) GetTaskStatus(ctx context.Context) map[string]any {
	return c.Execute(ctx, "getTaskStatus", nil)
}

// SendText types text into the chat input and submits it. When newTask is
// true the server starts a fresh task instead of continuing the current one.
func (c *Client) SendText(ctx context.Context, text string, newTask bool) map[string]any {
	return c.Execute(ctx, "sendText", sendTextArgs{Text: text, IsNewTask: newTask})
}

// StartNewTask starts a new task with the given prompt. Unlike every other
// command, startNewTask takes positional list args on the wire: [task],
// with images appended as a nested list only when present.
func (c *Client) StartNewTask(ctx context.Context, task string, images []string) map[string]any {
	args := []any{task}
	if len(images) > 0 {
		args = append(args, images)
	}
	return c.Execute(ctx, "startNewTask", args)
}

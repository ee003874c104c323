package automation

// Position is a zero-based line/character coordinate in an editor document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range describes a text selection between two positions. The client does
// not require start <= end; the server interprets the coordinates.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// request is the envelope POSTed to the automation server. Args is omitted
// entirely when nil, never sent as null.
type request struct {
	Command string `json:"command"`
	Args    any    `json:"args,omitempty"`
}

type rangeArgs struct {
	Range Range `json:"range"`
}

type selectButtonArgs struct {
	ButtonID string `json:"buttonId"`
}

type sendTextArgs struct {
	Text      string `json:"text"`
	IsNewTask bool   `json:"isNewTask"`
}

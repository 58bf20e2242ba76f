package replay

// FrameInput records input state for a single frame. Keys are short and
// omitempty so idle frames serialize to almost nothing.
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	J   bool `json:"j,omitempty"`   // Jump held
	Run bool `json:"run,omitempty"` // Run held
	C   bool `json:"c,omitempty"`   // Confirm pressed
	X   bool `json:"x,omitempty"`   // Cancel pressed
}

// ReplayData contains all data needed to replay a game session. The
// seed pins level generation so the same inputs meet the same layouts.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	World     int          `json:"world"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

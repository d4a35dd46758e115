// Package replay records per-frame UI input to JSON and plays it back,
// so a camera choreography session can be reproduced frame by frame.
package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MC  bool `json:"mc,omitempty"`  // MouseClick
	K   int  `json:"k,omitempty"`   // Entry shortcut key (1-based)
	Esc bool `json:"esc,omitempty"` // Escape
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FramerateMismatch reports whether the session was recorded at a tick rate
// other than tps. Recordings without a framerate never mismatch.
func (d ReplayData) FramerateMismatch(tps int) bool {
	return d.Framerate > 0 && d.Framerate != tps
}

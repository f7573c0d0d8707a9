package ui

// FrameMsg carries a rendered frame from the engine to the program.
type FrameMsg struct {
	View string
}

// DoneMsg is sent when the session body returns.
type DoneMsg struct {
	Err error
}

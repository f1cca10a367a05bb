package models

// StageProgress is the completion ratio of one stage.
type StageProgress struct {
	Total     int
	Completed int
	// Percentage is 100*Completed/Total, or 0 for an empty stage.
	Percentage float64
}

// Done reports whether every tool of the stage is completed.
func (s StageProgress) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// ToolView is a render-ready tool card.
type ToolView struct {
	Tool      ToolDescriptor
	Completed bool
	// Locked marks a premium tool shown to a non-premium session: visible
	// but not openable.
	Locked bool
}

// StageView is a render-ready stage section. Stages hidden from the session
// are omitted from the slice entirely rather than flagged.
type StageView struct {
	Number   int
	Meta     StageMetadata
	Tools    []ToolView
	Progress StageProgress
	// ShowUpsell is set on reachable gated stages for non-premium sessions.
	ShowUpsell bool
}

// ExpiryNotice summarizes the premium expiry state for banners and logs.
type ExpiryNotice struct {
	Expired      bool
	ExpiringSoon bool
	DaysLeft     int
}

package models

// ProgressSchemaVersion is the current layout version of the persisted
// progress record. Records loaded with version zero predate versioning and
// are treated as version one.
const ProgressSchemaVersion = 1

// ProgressRecord tracks the user's journey through the framework. It is the
// single mutable entity of the client: loaded and saved atomically as one
// JSON blob on every change.
//
// The record is device-scoped, not account-scoped: it survives logout on
// purpose (returning users keep their journey) and is wiped only when a new
// account signs up.
type ProgressRecord struct {
	// SchemaVersion tags the persisted layout for future migrations.
	SchemaVersion int `json:"schemaVersion"`

	// CompletedTools lists ids of tools opened at least once, in completion
	// order. Treated as a set: marking a completed tool again is a no-op.
	CompletedTools []string `json:"completedTools"`

	// LastToolOpened is the id of the most recently completed tool.
	LastToolOpened string `json:"lastToolOpened,omitempty"`

	// CurrentStage is the stage the user is working on. Starts at 1 and only
	// ever increases, up to StageCount.
	CurrentStage int `json:"currentStage"`

	// FirstTime is true until the framework introduction has been shown.
	FirstTime bool `json:"firstTime"`
}

// NewProgressRecord returns the defaults used when no record is persisted
// yet: nothing completed, stage 1, introduction pending.
func NewProgressRecord() ProgressRecord {
	return ProgressRecord{
		SchemaVersion:  ProgressSchemaVersion,
		CompletedTools: []string{},
		CurrentStage:   1,
		FirstTime:      true,
	}
}

// Completed reports whether the tool id has been marked completed.
func (p *ProgressRecord) Completed(toolID string) bool {
	for _, id := range p.CompletedTools {
		if id == toolID {
			return true
		}
	}
	return false
}

// Normalize repairs a record loaded from storage: missing schema version
// defaults to version one and CurrentStage is clamped to [1, StageCount] so a
// tampered blob cannot push the journey out of range.
func (p *ProgressRecord) Normalize() {
	if p.SchemaVersion <= 0 {
		p.SchemaVersion = ProgressSchemaVersion
	}
	if p.CompletedTools == nil {
		p.CompletedTools = []string{}
	}
	if p.CurrentStage < 1 {
		p.CurrentStage = 1
	}
	if p.CurrentStage > StageCount {
		p.CurrentStage = StageCount
	}
}

package models

// StageCount is the fixed number of stages in the product-creation journey.
// Stage numbers form the contiguous sequence 1..StageCount.
const StageCount = 6

// ToolDescriptor is the client-side view of a tool. It deliberately has no
// launch URL field: URLs never reach the catalog held by the client and are
// resolved from the backend per open.
type ToolDescriptor struct {
	// ID is the unique, stable tool identifier referenced by ProgressRecord.
	ID string `json:"id"`

	// Name is the human-readable tool name.
	Name string `json:"name"`

	// Description is a short summary shown on the tool card.
	Description string `json:"description"`

	// Icon is the emoji or glyph shown next to the name.
	Icon string `json:"icon"`

	// Plan is the minimum subscription tier required to open the tool.
	Plan Plan `json:"plan"`

	// Stage is the journey stage this tool belongs to, in [1, StageCount].
	Stage int `json:"stage"`

	// Type is a free-form category label ("Analyzer", "Generator", ...).
	Type string `json:"type"`
}

// StageMetadata describes one journey stage.
type StageMetadata struct {
	Title string `json:"title"`
	Goal  string `json:"goal"`
	Plan  Plan   `json:"plan"`
}

// Catalog holds the tool list and stage metadata for one dashboard session.
// It is populated once from the backend and immutable afterwards. The catalog
// is always passed around explicitly; no package-level instance exists.
type Catalog struct {
	Tools  []ToolDescriptor
	Stages map[int]StageMetadata
}

// Tool returns the descriptor with the given id, if present.
func (c *Catalog) Tool(id string) (ToolDescriptor, bool) {
	if c == nil {
		return ToolDescriptor{}, false
	}
	for _, t := range c.Tools {
		if t.ID == id {
			return t, true
		}
	}
	return ToolDescriptor{}, false
}

// StageTools returns all tools of stage n in catalog order.
func (c *Catalog) StageTools(n int) []ToolDescriptor {
	if c == nil {
		return nil
	}
	var tools []ToolDescriptor
	for _, t := range c.Tools {
		if t.Stage == n {
			tools = append(tools, t)
		}
	}
	return tools
}

// Stage returns the metadata of stage n, if defined.
func (c *Catalog) Stage(n int) (StageMetadata, bool) {
	if c == nil {
		return StageMetadata{}, false
	}
	meta, ok := c.Stages[n]
	return meta, ok
}

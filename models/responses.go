package models

// BackendTool is the wire shape of a tool as the backend sends it, including
// the launch URL. It exists only inside the transport layer; the catalog
// conversion drops the URL before anything else sees the tool.
type BackendTool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Plan        Plan   `json:"plan"`
	Stage       int    `json:"stage"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
}

// Descriptor returns the URL-free client-side view of the tool.
func (b BackendTool) Descriptor() ToolDescriptor {
	return ToolDescriptor{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
		Plan:        b.Plan,
		Stage:       b.Stage,
		Type:        b.Type,
	}
}

// ToolsResponse is the backend reply to action=getTools.
//
// FrameworkStages is keyed by the stage number rendered as a string ("1".."6")
// because the backend serializes the stage map from a spreadsheet row index.
type ToolsResponse struct {
	Success         bool                     `json:"success"`
	Tools           []BackendTool            `json:"tools"`
	FrameworkStages map[string]StageMetadata `json:"frameworkStages"`
	Message         string                   `json:"message,omitempty"`
}

// ToolResponse is the backend reply to action=getTool: the single tool with
// its launch URL resolved.
type ToolResponse struct {
	Success bool        `json:"success"`
	Tool    BackendTool `json:"tool"`
	Message string      `json:"message,omitempty"`
}

// AuthResponse is the backend reply to the login and signup actions.
type AuthResponse struct {
	Success bool `json:"success"`

	// UserID is the backend-assigned account identifier.
	UserID string `json:"userId"`

	// Name is the account display name.
	Name string `json:"name"`

	// Plan is the subscription tier at the time of authentication.
	Plan Plan `json:"plan"`

	// ExpiryDate is the premium expiry date, empty when not applicable.
	ExpiryDate string `json:"expiryDate,omitempty"`

	// Message carries the human-readable failure reason when Success is false.
	Message string `json:"message,omitempty"`
}

// MessageResponse is the backend reply to actions that return no payload,
// such as reset-password.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

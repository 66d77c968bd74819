package event

type ToolCreatedEvent struct {
	ToolID     string `json:"tool_id"`
	CategoryID string `json:"category_id"`
}

func (e ToolCreatedEvent) Type() string {
	return ToolCreatedEventType
}

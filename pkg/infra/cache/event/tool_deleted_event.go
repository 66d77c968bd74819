package event

type ToolDeletedEvent struct {
	ToolID     string `json:"tool_id"`
	CategoryID string `json:"category_id"`
}

func (e ToolDeletedEvent) Type() string {
	return ToolDeletedEventType
}

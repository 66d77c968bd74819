package event

import "reflect"

type Event interface {
	Type() string
}

var (
	ToolCreatedEventType = "ToolCreatedEvent"
	ToolDeletedEventType = "ToolDeletedEvent"
)

var Registry = map[string]reflect.Type{
	ToolCreatedEventType: reflect.TypeOf(ToolCreatedEvent{}),
	ToolDeletedEventType: reflect.TypeOf(ToolDeletedEvent{}),
}

package events

import "time"

const (
	SocketCreated = "SOCKET_CREATED"
	CpuCreated    = "CPU_CREATED"
	CpuUpdated    = "CPU_UPDATED"
	CpuDeleted    = "CPU_DELETED"
)

// New stamps an event with the current UTC time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

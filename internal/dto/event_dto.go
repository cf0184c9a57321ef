package dto

import "time"

// CatalogEventMessage is the JSON body of messages on the in-process
// event topic.
type CatalogEventMessage struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}

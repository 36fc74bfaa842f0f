package services

import (
	"encoding/json"
	"log"
)

// EventPublisher publishes domain events to the message broker. Satisfied by
// *rabbitmq.Client; tests supply their own implementation. Publishing is
// best-effort: a failed publish is logged and never fails the request.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishEvent marshals and publishes an event, tolerating a nil publisher.
func publishEvent(publisher EventPublisher, routingKey string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

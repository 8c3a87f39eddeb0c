package live

import (
	"time"

	"flixhub/internal/works"
	"flixhub/pkg/models"
)

// Event types pushed to clients.
const (
	EventWelcome  = "welcome"
	EventResults  = "results"
	EventSelect   = "selection"
	EventResolved = "resolved"
	EventNotFound = "not_found"
	EventError    = "error"
	EventReloaded = "catalog.reloaded"
)

type Event struct {
	Type       string            `json:"type"`
	Session    string            `json:"session,omitempty"`
	Result     *works.Result     `json:"result,omitempty"`
	Selection  *works.Selection  `json:"selection,omitempty"`
	Resolution *works.Resolution `json:"resolution,omitempty"`
	Work       string            `json:"work,omitempty"`
	Records    int               `json:"records,omitempty"`
	Error      string            `json:"error,omitempty"`
	At         time.Time         `json:"at"`
}

// Message is a client request: {type, value|values}.
type Message struct {
	Type   string            `json:"type"`
	Value  models.FlexString `json:"value,omitempty"`
	Values []string          `json:"values,omitempty"`
}

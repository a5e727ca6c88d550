package models

import "time"

// FailedMessage is what a consumer dead-letters when it cannot process a message.
type FailedMessage struct {
	Topic      string    `json:"topic"`
	Key        string    `json:"key,omitempty"`
	Partition  int32     `json:"partition"`
	Offset     int64     `json:"offset"`
	Payload    []byte    `json:"payload"`
	Timestamp  time.Time `json:"timestamp"`
	CauseError error     `json:"-"`
	Error      string    `json:"error"`
}

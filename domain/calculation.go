package domain

import "time"

// Calculation is one recorded engine evaluation. Input and Result hold the
// JSON encoding of the tool's records.
type Calculation struct {
	ID        int64     `json:"id"`
	Tool      Tool      `json:"tool"`
	Key       string    `json:"key"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

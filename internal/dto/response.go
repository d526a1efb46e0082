package dto

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Wrap wraps a successful payload in the response envelope
func Wrap(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

package models

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for informational endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

type DebugResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

type ConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

package dto

// PauseStateResponse reports whether the ledger accepts mutations.
type PauseStateResponse struct {
	Paused bool `json:"paused"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

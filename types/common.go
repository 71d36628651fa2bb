package types

// ApiError is the body of every error response
type ApiError struct {
	Error string `json:"error" description:"Human readable description of what went wrong"`
}

package discord

// CreateMessageRequest is the payload for the channel message-create endpoint
type CreateMessageRequest struct {
	Content string `json:"content"`
}

// APIError is the error body Discord returns on non-2xx responses
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

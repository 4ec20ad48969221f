package types

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// MessageBody is used for plain acknowledgement responses.
type MessageBody struct {
	Message string `json:"message"`
}

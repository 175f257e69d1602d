package server

// MessageResponse is the envelope mutating endpoints answer with: a short
// human message plus the updated resource.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

package models

// EncodedFile is an uploaded attachment prepared for transport to the
// generation service.
type EncodedFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"` // standard base64
}

// GenerateRequest is the body the relay posts to the generation service.
type GenerateRequest struct {
	Prompt string        `json:"prompt"`
	Files  []EncodedFile `json:"files"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GenerateReply mirrors the generation service's success body. Reply is a
// pointer so a missing field can be told apart from an empty reply.
type GenerateReply struct {
	Reply *string `json:"reply"`
}

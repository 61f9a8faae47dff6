package llm

// Request is a single-turn completion request.
type Request struct {
	Prompt string
	// MaxTokens bounds the completion length.
	MaxTokens int
	// Temperature is left to the provider default when zero.
	Temperature float64
}

// Response is the raw completion text.
type Response struct {
	Content    string
	StopReason string
}

package google

const (
	// Gemini 2.5 models
	ModelGemini25Pro       = "gemini-2.5-pro"
	ModelGemini25Flash     = "gemini-2.5-flash"
	ModelGemini25FlashLite = "gemini-2.5-flash-lite"

	// Gemini 2.0 models
	ModelGemini20Flash     = "gemini-2.0-flash"
	ModelGemini20Flash001  = "gemini-2.0-flash-001"
	ModelGemini20FlashLite = "gemini-2.0-flash-lite"
)

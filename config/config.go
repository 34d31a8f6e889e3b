package config

// LLMConfig holds the model settings used for image query generation
type LLMConfig struct {
	Provider  string `json:"provider"`  // LLM provider name
	APIKey    string `json:"apiKey"`    // API key
	BaseURL   string `json:"baseUrl"`   // API base URL
	ModelName string `json:"modelName"` // Model identifier
	MaxTokens int    `json:"maxTokens"` // Response token budget
}

// ImageConfig holds image sourcing settings
type ImageConfig struct {
	UnsplashAccessKey string `json:"unsplashAccessKey"` // Unsplash API access key
	UsePlaceholders   bool   `json:"usePlaceholders"`   // Skip remote fetches, render placeholders
	FetchRetries      int    `json:"fetchRetries"`      // Attempts before falling back to a placeholder
}

// Config structure
type Config struct {
	LLM          LLMConfig   `json:"llm"`
	Images       ImageConfig `json:"images"`
	DataDir      string      `json:"dataDir"`      // Session database and cache location
	OutputDir    string      `json:"outputDir"`    // Where generated decks land
	Persona      string      `json:"persona"`      // Default persona when input metadata has none
	DetailedLog  bool        `json:"detailedLog"`
	CacheResults bool        `json:"cacheResults"` // Reuse identical decks from the session cache
}

package config

import "fmt"

// Backend identifies the API family that serves model requests. Each backend
// carries a default model and a default endpoint so that switching backends
// keeps the configuration consistent without the user re-entering URLs.
type Backend string

const (
	BackendOpenRouter Backend = "openrouter"
	BackendOpenAI     Backend = "openai"
	BackendOllama     Backend = "ollama"
)

// DefaultBackend is used when no configuration source names one.
const DefaultBackend = BackendOpenRouter

type backendDefaults struct {
	model   string
	baseURL string
}

var backends = map[Backend]backendDefaults{
	BackendOpenRouter: {
		model:   "openai/gpt-4.1-mini",
		baseURL: "https://openrouter.ai/api/v1",
	},
	BackendOpenAI: {
		model:   "gpt-4.1-mini",
		baseURL: "https://api.openai.com/v1",
	},
	BackendOllama: {
		model:   "qwen2.5-coder:7b",
		baseURL: "http://localhost:11434/v1",
	},
}

// DefaultModel returns the model used when none is configured.
func (b Backend) DefaultModel() string {
	return backends[b].model
}

// DefaultBaseURL returns the endpoint the backend serves from.
func (b Backend) DefaultBaseURL() string {
	return backends[b].baseURL
}

func (b Backend) String() string {
	return string(b)
}

// MarshalText implements encoding.TextMarshaler so Backend round-trips
// through the TOML and JSON codecs.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects backend
// names that are not registered.
func (b *Backend) UnmarshalText(text []byte) error {
	candidate := Backend(text)
	if _, ok := backends[candidate]; !ok {
		return fmt.Errorf("unknown backend %q (valid: %s, %s, %s)",
			string(text), BackendOpenRouter, BackendOpenAI, BackendOllama)
	}
	*b = candidate
	return nil
}

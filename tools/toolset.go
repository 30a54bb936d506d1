package tools

import (
	"encoding/json"

	"github.com/morikuni/failure/v2"

	"github.com/betahubio/betahub-mcp/api"
	"github.com/betahubio/betahub-mcp/config"
)

// Toolset holds the dependencies shared by every tool. It is stateless
// between calls; nothing here is mutated after construction.
type Toolset struct {
	cfg    *config.Config
	client *api.Client
}

// New returns a Toolset calling the API through client.
func New(cfg *config.Config, client *api.Client) *Toolset {
	return &Toolset{cfg: cfg, client: client}
}

// jsonText serializes an envelope as the pretty-printed JSON text every
// list tool returns.
func jsonText(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(b), nil
}

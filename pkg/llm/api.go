package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/prompts"
)

// GetResponse sends the chat messages to the configured model and returns the
// complete response text. The transport here is the external collaborator the
// parsing pipeline never sees; parsing only receives the final string.
func GetResponse(cfg *config.Config, messages []prompts.Message, timeout time.Duration) (string, error) {
	if cfg.OllamaServerURL != "" && os.Getenv("OLLAMA_HOST") == "" {
		// ClientFromEnvironment reads OLLAMA_HOST; honor the configured server.
		os.Setenv("OLLAMA_HOST", cfg.OllamaServerURL)
	}

	model := cfg.Model
	if model == "" {
		return "", fmt.Errorf("no model configured")
	}

	var sb strings.Builder
	if err := callOllamaAPI(model, messages, cfg, timeout, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/utils"
	ollama "github.com/ollama/ollama/api"
)

// chatOptions sizes the request for the conversation: num_ctx grows with the
// estimated prompt tokens with headroom, floored at 4096, and num_predict caps
// the reply at the configured max_tokens.
func chatOptions(cfg *config.Config, messages []prompts.Message) map[string]interface{} {
	totalTokens := 0
	for _, msg := range messages {
		totalTokens += utils.EstimateTokens(msg.Content)
	}
	numCtx := totalTokens + 1000
	if numCtx < 4096 {
		numCtx = 4096
	}
	return map[string]interface{}{
		"temperature": cfg.Temperature,
		"top_p":       1.0,
		"num_ctx":     numCtx,
		"num_predict": cfg.MaxTokens,
		"stream":      true,
	}
}

func callOllamaAPI(modelName string, messages []prompts.Message, cfg *config.Config, timeout time.Duration, writer io.Writer) error {
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return fmt.Errorf("could not create ollama client: %w", err)
	}

	ollamaMessages := make([]ollama.Message, len(messages))
	for i, msg := range messages {
		ollamaMessages[i] = ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	// The model name for ollama is without the "ollama:" prefix
	actualModelName := strings.TrimPrefix(modelName, "ollama:")

	req := &ollama.ChatRequest{
		Model:    actualModelName,
		Messages: ollamaMessages,
		Options:  chatOptions(cfg, messages),
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	respFunc := func(res ollama.ChatResponse) error {
		writer.Write([]byte(res.Message.Content))
		return nil
	}

	if err := client.Chat(ctx, req, respFunc); err != nil {
		return fmt.Errorf("ollama chat failed: %w", err)
	}

	return nil
}

package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"copy_prompt_server/internal/ai"
	"copy_prompt_server/internal/prompt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TextGenerator is the downstream generate(modelId, prompt) capability.
type TextGenerator interface {
	Generate(ctx context.Context, modelID, prompt string) (string, error)
	DefaultModel() string
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator TextGenerator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator TextGenerator) *APIHandler {
	return &APIHandler{generator: generator}
}

// --- API Handlers ---

// POST /prompt/assemble
func (h *APIHandler) AssemblePrompt(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	requestID := uuid.New().String()
	text, blocks, err := assembleForm(req)
	if err != nil {
		log.Printf("Prompt assembly %s rejected: %v", requestID, err)
		c.JSON(promptErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	log.Printf("Assembled prompt %s: role=%s blocks=%d chars=%d", requestID, req.AIRole, len(blocks), len(text))
	c.JSON(http.StatusCreated, AssembleResponse{ID: requestID, Prompt: text, Blocks: blocks})
}

// POST /prompt/generate
func (h *APIHandler) GeneratePrompt(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	requestID := uuid.New().String()
	text := req.Prompt
	if text == "" && req.Form != nil {
		var err error
		if text, _, err = assembleForm(*req.Form); err != nil {
			log.Printf("Prompt assembly for generation %s rejected: %v", requestID, err)
			c.JSON(promptErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
	}

	model := req.Model
	if model == "" {
		model = h.generator.DefaultModel()
	}

	log.Printf("Received generation request %s for model %s", requestID, model)
	content, err := h.generator.Generate(c.Request.Context(), model, text)
	if err != nil {
		log.Printf("Error generating %s with %s: %v", requestID, model, err)
		c.JSON(generateErrorStatus(err), gin.H{"error": "Failed to generate text", "id": requestID})
		return
	}

	log.Printf("Generation %s successful (%d chars)", requestID, len(content))
	c.JSON(http.StatusOK, GenerateResponse{ID: requestID, Model: model, Prompt: text, Content: content})
}

// GET /prompt/options
func (h *APIHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, prompt.Options())
}

// assembleForm converts and assembles a form, returning the prompt and the blocks that fired.
func assembleForm(req FormRequest) (string, []string, error) {
	cfg, _, err := req.ToConfig()
	if err != nil {
		return "", nil, err
	}
	blocks, err := prompt.Blocks(cfg)
	if err != nil {
		return "", nil, err
	}
	text, err := prompt.Assemble(cfg)
	if err != nil {
		return "", nil, err
	}
	return text, blocks, nil
}

func promptErrorStatus(err error) int {
	switch {
	case errors.Is(err, prompt.ErrLookupGap):
		// Data bug on our side, not the caller's.
		return http.StatusInternalServerError
	case errors.Is(err, prompt.ErrConfiguration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func generateErrorStatus(err error) int {
	switch {
	case errors.Is(err, ai.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, ai.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"copy_prompt_server/internal/api"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "promptctl",
	Short: "Assemble copywriting prompts from request files and send them to a model",
	Long: `promptctl reads a prompt form (YAML or JSON, same fields as POST /prompt/assemble)
and assembles it into a prompt.

Commands:
  promptctl assemble -f request.yaml     Print the assembled prompt
  promptctl generate -f request.yaml     Assemble and send to a model
  promptctl options                      List accepted values for every form field`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".",
		"Directory searched for config.yaml")
}

// loadRequest reads a form file and applies the same binding rules as the HTTP API.
func loadRequest(path string) (api.FormRequest, error) {
	var req api.FormRequest
	if path == "" {
		return req, fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	// JSON is valid YAML, so one decoder covers both formats.
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request: %w", err)
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, fmt.Errorf("invalid request: %w", err)
	}
	return req, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copy_prompt_server/config"
	"copy_prompt_server/internal/ai"
	"copy_prompt_server/internal/prompt"
)

var (
	generateRequestPath string
	generateModel       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a prompt and send it to a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(generateRequestPath)
		if err != nil {
			return err
		}
		cfg, _, err := req.ToConfig()
		if err != nil {
			return err
		}
		text, err := prompt.Assemble(cfg)
		if err != nil {
			return err
		}

		appCfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		generator := ai.NewGenerator(ai.Options{
			OpenAIKey:     appCfg.OpenAIKey,
			OpenAIBaseURL: appCfg.OpenAIBaseURL,
			AnthropicKey:  appCfg.AnthropicKey,
			DefaultModel:  appCfg.DefaultModel,
			MaxTokens:     appCfg.MaxTokens,
			Timeout:       appCfg.GenerationTimeout,
		})

		content, err := generator.Generate(cmd.Context(), generateModel, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateRequestPath, "file", "f", "", "Path to YAML or JSON request file")
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "", "Model id (default: DEFAULT_MODEL)")
	rootCmd.AddCommand(generateCmd)
}

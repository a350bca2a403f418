package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"copy_prompt_server/internal/prompt"
)

var (
	assembleRequestPath string
	assembleOutputPath  string
	assembleShowBlocks  bool
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a prompt from a request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(assembleRequestPath)
		if err != nil {
			return err
		}
		cfg, _, err := req.ToConfig()
		if err != nil {
			return err
		}
		out, err := prompt.Assemble(cfg)
		if err != nil {
			return err
		}

		if assembleShowBlocks {
			blocks, err := prompt.Blocks(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "blocks: %v\n", blocks)
		}

		if assembleOutputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(assembleOutputPath, []byte(out+"\n"), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&assembleRequestPath, "file", "f", "", "Path to YAML or JSON request file")
	assembleCmd.Flags().StringVarP(&assembleOutputPath, "output", "o", "", "Write prompt to file (default: stdout)")
	assembleCmd.Flags().BoolVar(&assembleShowBlocks, "blocks", false, "Print the emitted block names to stderr")
	rootCmd.AddCommand(assembleCmd)
}

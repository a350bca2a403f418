package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"copy_prompt_server/internal/prompt"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List accepted values for every enum field of the form",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(prompt.Options()); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

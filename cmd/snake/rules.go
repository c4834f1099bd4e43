package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective arena rules",
	Long: `Print the arena rules as YAML after applying --config or the files in
~/.snake/configs and ./configs. The output is a valid rules file.

Examples:
  snake rules > ~/.snake/configs/arena.yaml
  snake rules --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(_ *cobra.Command, _ []string) error {
	rules, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

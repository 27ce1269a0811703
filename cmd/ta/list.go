package main

import (
	"fmt"

	"github.com/quantstream/ta/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported indicator kinds",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range config.Kinds {
			fmt.Println(kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// Package cfg provides configuration and command-line interface setup for
// Grabarr.
package cfg

import (
	"fmt"

	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "grabarr",
	Short: "Grabarr is an interactive YouTube download tool.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Grabarr version.",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Grabarr", consts.Version)
	},
}

// InitCommands initializes the root command and its flags.
func InitCommands() {
	initProgramFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute parses flags and runs the selected command.
func Execute() error {
	return rootCmd.Execute()
}

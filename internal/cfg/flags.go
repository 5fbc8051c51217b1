package cfg

import (
	"grabarr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags sets up the root command's flags and binds them into
// Viper.
func initProgramFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Settings file to use instead of the default location")
	viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile))

	rootCmd.PersistentFlags().StringP(keys.DownloadDir, "d", "", "Root directory for downloaded files")
	viper.BindPFlag(keys.DownloadDir, rootCmd.PersistentFlags().Lookup(keys.DownloadDir))

	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel))
}

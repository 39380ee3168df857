package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/talentdb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		return err
	},
}

var configSetBaseURLCmd = &cobra.Command{
	Use:   "set-base-url <url>",
	Short: "Save the candidate service address to the config file",
	Long: `Save the candidate service address to the config file. Comments and
other settings in the file are preserved.

Example:
  talentdb config set-base-url http://candidates.internal:5000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated := cfg
		updated.API.BaseURL = args[0]
		if err := config.Validate(updated); err != nil {
			return err
		}

		path := configFilePath()
		if path == "" {
			return fmt.Errorf("no config file location available")
		}
		if err := config.SaveBaseURL(path, args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "api.base_url = %s (%s)\n", args[0], path)
		return err
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configSetBaseURLCmd)
	rootCmd.AddCommand(configCmd)
}

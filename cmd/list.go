package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/talentdb/internal/presentation"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered candidates",
	Long: `List all registered candidates as JSON, in the order the server returns them.

Examples:
  talentdb list

  # Point at another server
  talentdb list --base-url http://candidates.internal:5000

  # Parse specific fields with jq
  talentdb list | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession(version)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.client.List(cmd.Context())
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatCandidates(presentation.FromRecords(records))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

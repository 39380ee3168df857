package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/presentation"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword...]",
	Short: "Search candidates by keyword",
	Long: `Search candidates by keyword and print the matches as JSON.

Multiple arguments are joined with spaces. A blank keyword prints the full
list instead of searching.

Examples:
  talentdb search golang
  talentdb search "machine learning"
  talentdb search go | jq length`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(version)
		if err != nil {
			return err
		}
		defer s.Close()

		var records []candidate.Record
		if keyword := strings.TrimSpace(strings.Join(args, " ")); keyword == "" {
			records, err = s.client.List(cmd.Context())
		} else {
			records, err = s.client.Search(cmd.Context(), keyword)
		}
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatCandidates(presentation.FromRecords(records))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/presentation"
)

var (
	addName       string
	addContact    string
	addSkills     string
	addExperience string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new candidate",
	Long: `Register a new candidate. Field values are sent exactly as given; the
server decides what is valid and its message is reported on failure.

Examples:
  talentdb add --name Alice --contact 555-0100
  talentdb add -n Bob -C bob@example.com -s "Go, PostgreSQL" -e "3 years backend"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession(version)
		if err != nil {
			return err
		}
		defer s.Close()

		c := candidate.NewCandidate(addName, addContact, addSkills, addExperience)
		if err := s.client.Create(cmd.Context(), c); err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatResult(presentation.ResultDTO{
			OK:      true,
			Message: fmt.Sprintf("'%s' registered!", c.Name),
		})
	},
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Candidate name (required)")
	addCmd.Flags().StringVarP(&addContact, "contact", "C", "", "Phone number or email (required)")
	addCmd.Flags().StringVarP(&addSkills, "skills", "s", "", "Skills, e.g. \"Go, PostgreSQL\"")
	addCmd.Flags().StringVarP(&addExperience, "experience", "e", "", "Experience summary")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("contact")
	rootCmd.AddCommand(addCmd)
}

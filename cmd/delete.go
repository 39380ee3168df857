package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/talentdb/internal/api"
	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/presentation"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a candidate",
	Long: `Delete a candidate by id. Asks for confirmation on stdin unless --yes
is given; anything other than "y" or "yes" cancels without contacting the
server's delete endpoint.

Examples:
  talentdb delete 42
  talentdb delete 42 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(version)
		if err != nil {
			return err
		}
		defer s.Close()
		return runDelete(cmd.Context(), s.client, candidate.ID(args[0]), deleteYes, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

// errDeleteFailed is returned when the server answers a delete with a non-2xx status.
var errDeleteFailed = errors.New("delete failed: server did not accept the request")

func runDelete(ctx context.Context, svc api.Service, id candidate.ID, yes bool, in io.Reader, out io.Writer) error {
	name := lookupName(ctx, svc, id)
	formatter := presentation.NewFormatter(out)

	if !yes && !confirm(in, out, fmt.Sprintf("Really delete '%s'? [y/N] ", name)) {
		return formatter.FormatResult(presentation.ResultDTO{OK: false, Message: "Delete cancelled."})
	}

	ok, err := svc.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errDeleteFailed
	}
	return formatter.FormatResult(presentation.ResultDTO{OK: true, Message: fmt.Sprintf("'%s' deleted.", name)})
}

// lookupName finds the display name for id, falling back to the id itself.
func lookupName(ctx context.Context, svc api.Service, id candidate.ID) string {
	records, err := svc.List(ctx)
	if err != nil {
		log.ErrorErr(log.CatApp, "Name lookup failed", err, "id", id)
		return id.String()
	}
	for _, r := range records {
		if r.ID == id {
			return r.Name
		}
	}
	return id.String()
}

// confirm writes prompt to out and reports whether the answer read from in is affirmative.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

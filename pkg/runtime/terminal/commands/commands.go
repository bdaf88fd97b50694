package commands

import (
	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/services/email"
)

// Reporter renders a finished report. The CLI decides whether that is the
// plain console form or the export table.
type Reporter interface {
	Handle(report *domain.Report) error
}

func addEmailFlag(cmd *cobra.Command, to *string) {
	cmd.Flags().StringVar(to, "email", "", "Compose the report as an email to this address and print the links")
}

func printEmailLinks(cmd *cobra.Command, to string, report *domain.Report) {
	if to == "" {
		return
	}
	msg := email.Compose(to, report)
	cmd.Println()
	cmd.Println("Mail client:", email.MailtoURL(msg))
	cmd.Println("Gmail:      ", email.GmailComposeURL(msg))
}

package email

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// Message is a report ready to hand off to the user's mail client.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Compose flattens a rendered report into a plain-text mail body.
func Compose(to string, report *domain.Report) Message {
	var body strings.Builder
	body.WriteString(report.Title)
	body.WriteString("\n")
	body.WriteString(fmt.Sprintf("Generated %s\n\n", report.GeneratedAt.Format("Jan 2, 2006")))

	for _, section := range report.Sections {
		body.WriteString(section.Title)
		body.WriteString("\n")
		keys := make([]string, 0, len(section.Summary))
		for key := range section.Summary {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			body.WriteString(fmt.Sprintf("  %s: %v\n", key, section.Summary[key]))
		}
		for _, detail := range section.Details {
			body.WriteString(fmt.Sprintf("  %s: %v %s\n", detail.Name, detail.Value, detail.Unit))
		}
		body.WriteString("\n")
	}

	return Message{
		To:      to,
		Subject: report.Title,
		Body:    body.String(),
	}
}

// MailtoURL builds a mailto: link that opens the default mail client with
// the message prefilled.
func MailtoURL(msg Message) string {
	query := url.Values{}
	query.Set("subject", msg.Subject)
	query.Set("body", msg.Body)
	return fmt.Sprintf("mailto:%s?%s", url.QueryEscape(msg.To), query.Encode())
}

// GmailComposeURL builds a Gmail web compose link for the message.
func GmailComposeURL(msg Message) string {
	query := url.Values{}
	query.Set("view", "cm")
	query.Set("to", msg.To)
	query.Set("su", msg.Subject)
	query.Set("body", msg.Body)
	return "https://mail.google.com/mail/?" + query.Encode()
}

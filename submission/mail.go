package submission

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type mailField struct {
	label string
	value string
}

func (s Submission) mailFields() []mailField {
	switch {
	case s.Beta != nil:
		f := s.Beta
		return []mailField{
			{"Name", f.Name.String()},
			{"Email", f.Email.String()},
			{"Company", f.Company.String()},
			{"Fleet size", f.FleetSize.String()},
			{"Phone", f.Phone.String()},
			{"Role", f.Role.String()},
			{"Vehicles", f.Vehicles.String()},
			{"Challenges", f.Challenges.String()},
			{"Message", f.Message.String()},
		}
	case s.Contact != nil:
		f := s.Contact
		return []mailField{
			{"Name", f.Name.String()},
			{"Email", f.Email.String()},
			{"Company", f.Company.String()},
			{"Subject", f.Subject.String()},
			{"Inquiry", f.Inquiry.String()},
			{"Message", f.Message.String()},
		}
	}
	return nil
}

// EmailSubject is the subject line of the internal notification.
func (s Submission) EmailSubject() string {
	switch {
	case s.Beta != nil:
		return fmt.Sprintf("New beta signup: %s (%s)", s.Beta.Company, s.Beta.Name)
	case s.Contact != nil && s.Contact.Inquiry == "investor":
		return fmt.Sprintf("New investor inquiry from %s", s.Contact.Name)
	case s.Contact != nil:
		return fmt.Sprintf("New contact message from %s", s.Contact.Name)
	}
	return "New form submission"
}

// EmailBody renders the notification HTML. Empty optional fields are left
// out; values are escaped.
func (s Submission) EmailBody(ts time.Time) (string, error) {
	var rows []g.Node
	for _, f := range s.mailFields() {
		if f.value == "" {
			continue
		}
		rows = append(rows, Tr(
			Td(Style("padding:6px 12px;font-weight:bold;vertical-align:top;color:#495057"), g.Text(f.label)),
			Td(Style("padding:6px 12px;white-space:pre-wrap"), g.Text(f.value)),
		))
	}

	doc := components.HTML5(components.HTML5Props{
		Title:    s.EmailSubject(),
		Language: "en",
		Body: []g.Node{
			Div(
				Style("font-family:Arial,sans-serif;line-height:1.6;color:#333;max-width:600px;margin:0 auto;padding:20px"),
				H2(Style("margin:0 0 16px;color:#1f2937"), g.Text(s.EmailSubject())),
				P(Style("font-size:12px;color:#6c757d"),
					g.Textf("Submitted %s · id %s", ts.UTC().Format(time.RFC1123), s.ID),
				),
				Table(Style("border-collapse:collapse;width:100%"), g.Group(rows)),
			),
		},
	})

	var b strings.Builder
	if err := doc.Render(&b); err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return b.String(), nil
}

// Summary is a one-line plain text version used for SMS alerts.
func (s Submission) Summary() string {
	switch {
	case s.Beta != nil:
		return fmt.Sprintf("Beta signup: %s, %s (fleet %s) <%s>", s.Beta.Name, s.Beta.Company, s.Beta.FleetSize, s.Beta.Email)
	case s.Contact != nil:
		return fmt.Sprintf("Contact from %s <%s>", s.Contact.Name, s.Contact.Email)
	}
	return "New form submission"
}

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
	"github.com/charmbracelet/lipgloss"
)

const deviceMarker = "●"

// printer renders command output either as styled text or as JSON.
type printer struct {
	w      io.Writer
	format string

	title   lipgloss.Style
	section lipgloss.Style
	faint   lipgloss.Style
	initial lipgloss.Style
	warn    lipgloss.Style
}

func newPrinter(w io.Writer, format string) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:       w,
		format:  format,
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Underline(true),
		faint:   r.NewStyle().Faint(true),
		initial: r.NewStyle().Bold(true).Width(3),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

func (p *printer) json() bool {
	return p.format == FormatJSON
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// contactView is the JSON form of a contact as shown to the user. Unlike
// [models.Contact] it carries device presence.
type contactView struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	PhoneNumber      string `json:"phoneNumber"`
	ProfileImageURL  string `json:"profileImageUrl,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	InDeviceContacts bool   `json:"inDeviceContacts"`
}

func newContactView(c models.Contact) contactView {
	v := contactView{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		PhoneNumber:      c.PhoneNumber,
		ProfileImageURL:  c.ProfileImageURL,
		InDeviceContacts: c.InDeviceContacts,
	}
	if !c.CreatedAt.IsZero() {
		v.CreatedAt = c.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return v
}

type sectionView struct {
	Title   string        `json:"title"`
	Entries []contactView `json:"entries"`
}

type directoryView struct {
	Query    string        `json:"query"`
	Total    int           `json:"total"`
	Matched  int           `json:"matched"`
	Sections []sectionView `json:"sections"`
}

type mutationView struct {
	Contact   contactView `json:"contact"`
	State     string      `json:"state"`
	Mirror    string      `json:"mirror"`
	MirrorErr string      `json:"mirrorError,omitempty"`
}

func (p *printer) contactRow(c models.Contact) string {
	marker := " "
	if c.InDeviceContacts {
		marker = deviceMarker
	}

	return fmt.Sprintf("%s %s %-24s %-16s %s",
		marker,
		p.initial.Render(c.Initials()),
		c.DisplayName(),
		c.PhoneNumber,
		p.faint.Render(c.ID),
	)
}

func (p *printer) printDirectory(view models.DirectoryView) error {
	if p.json() {
		out := directoryView{
			Query:    view.Query,
			Total:    view.Total,
			Matched:  view.Matched,
			Sections: make([]sectionView, 0, len(view.Sections)),
		}
		for _, s := range view.Sections {
			sv := sectionView{Title: s.Title, Entries: make([]contactView, 0, len(s.Entries))}
			for _, c := range s.Entries {
				sv.Entries = append(sv.Entries, newContactView(c))
			}
			out.Sections = append(out.Sections, sv)
		}
		return p.writeJSON(out)
	}

	if view.Matched == 0 {
		if strings.TrimSpace(view.Query) != "" {
			p.line("%s", p.faint.Render(fmt.Sprintf("no contacts match %q", view.Query)))
		} else {
			p.line("%s", p.faint.Render("no contacts"))
		}
		return nil
	}

	for _, s := range view.Sections {
		p.line("%s", p.section.Render(s.Title))
		for _, c := range s.Entries {
			p.line("%s", p.contactRow(c))
		}
	}
	p.line("%s", p.faint.Render(fmt.Sprintf("%d of %d contacts, %s on this device", view.Matched, view.Total, deviceMarker)))

	return nil
}

func (p *printer) printContact(c models.Contact) error {
	if p.json() {
		return p.writeJSON(newContactView(c))
	}

	p.line("%s", p.title.Render(c.DisplayName()))
	p.line("  id:      %s", c.ID)
	p.line("  phone:   %s", c.PhoneNumber)
	if c.ProfileImageURL != "" {
		p.line("  image:   %s", c.ProfileImageURL)
	}
	if !c.CreatedAt.IsZero() {
		p.line("  created: %s", c.CreatedAt.Format("2006-01-02 15:04"))
	}
	if c.InDeviceContacts {
		p.line("  %s saved on this device", deviceMarker)
	}

	return nil
}

func (p *printer) printMutation(verb string, res models.MutationResult) error {
	if p.json() {
		v := mutationView{
			Contact: newContactView(res.Contact),
			State:   res.State.String(),
			Mirror:  res.Mirror.String(),
		}
		if res.MirrorErr != nil {
			v.MirrorErr = res.MirrorErr.Error()
		}
		return p.writeJSON(v)
	}

	p.line("%s %s (%s)", verb, p.title.Render(res.Contact.DisplayName()), res.Contact.ID)

	switch res.Mirror {
	case models.MirrorSucceeded:
		p.line("  %s device address book updated", deviceMarker)
	case models.MirrorFailedIgnored:
		p.line("  %s", p.warn.Render("device address book not updated: "+mirrorMessage(res.MirrorErr)))
	}

	return nil
}

func (p *printer) printDeviceContacts(contacts []models.DeviceContact) error {
	if p.json() {
		if contacts == nil {
			contacts = []models.DeviceContact{}
		}
		return p.writeJSON(contacts)
	}

	if len(contacts) == 0 {
		p.line("%s", p.faint.Render("no device contacts"))
		return nil
	}

	for _, c := range contacts {
		name := strings.TrimSpace(c.GivenName + " " + c.FamilyName)
		numbers := make([]string, 0, len(c.PhoneNumbers))
		for _, n := range c.PhoneNumbers {
			numbers = append(numbers, n.Label+":"+n.Number)
		}
		p.line("%-24s %s %s", name, strings.Join(numbers, ", "), p.faint.Render(c.ID))
	}

	return nil
}

func (p *printer) printHistory(history []string) error {
	if p.json() {
		if history == nil {
			history = []string{}
		}
		return p.writeJSON(history)
	}

	if len(history) == 0 {
		p.line("%s", p.faint.Render("no recent searches"))
		return nil
	}

	p.line("%s", p.title.Render("Recent searches"))
	for i, entry := range history {
		p.line("  %2d  %s", i+1, entry)
	}

	return nil
}

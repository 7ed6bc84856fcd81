// Package tui is the terminal review screen for extracted headstone pages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChaseHampton/headstones/internal/page"
	"github.com/ChaseHampton/headstones/internal/record"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Writer persists a reviewed headstone at its 1-based datastore index.
type Writer interface {
	WriteRecord(ctx context.Context, index int, h *record.Headstone) error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Width(22)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2a3850")).Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// savedMsg reports a finished write. target is the page's live headstone and
// primaryKey the key the store recomputed on its copy.
type savedMsg struct {
	target     *record.Headstone
	primaryKey string
	err        error
}

type Model struct {
	reviewer *page.Reviewer
	writer   Writer
	status   string
	failed   bool
}

// New returns a review screen over r. writer may be nil, in which case saving
// only acknowledges the page.
func New(r *page.Reviewer, writer Writer) Model {
	return Model{reviewer: r, writer: writer}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.status, m.failed = "save failed: "+msg.err.Error(), true
		} else {
			if msg.target != nil {
				msg.target.PrimaryKey = msg.primaryKey
			}
			m.status, m.failed = "saved", false
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "n":
			if m.reviewer.Next() {
				m.status = ""
			}
		case "left", "h", "p":
			if m.reviewer.Previous() {
				m.status = ""
			}
		case "s":
			return m, m.save()
		}
	}
	return m, nil
}

func (m Model) save() tea.Cmd {
	cur, ok := m.reviewer.Current()
	if !ok {
		return nil
	}
	// The command runs off the update goroutine, so it writes a copy and the
	// recomputed key is applied back in Update.
	var staged *record.Headstone
	if cur.Headstone != nil {
		hs := *cur.Headstone
		staged = &hs
	}
	return func() tea.Msg {
		if !m.reviewer.SaveToDatabase() {
			return savedMsg{err: fmt.Errorf("page %d was not accepted", cur.PageNumber)}
		}
		if m.writer == nil || staged == nil {
			return savedMsg{}
		}
		if err := m.writer.WriteRecord(context.Background(), cur.PageNumber, staged); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{target: cur.Headstone, primaryKey: staged.PrimaryKey}
	}
}

func (m Model) View() string {
	cur, ok := m.reviewer.Current()
	if !ok {
		return "no pages loaded\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Page %d of %d  %s", m.reviewer.Index()+1, m.reviewer.Len(), cur.FileName)))
	b.WriteString("\n")

	if h := cur.Headstone; h != nil {
		b.WriteString(boxStyle.Render(headerView(h)))
		b.WriteString("\n")
		for slot := 0; slot < record.DecedentSlots; slot++ {
			p := h.Decedent(slot)
			if slot > 0 && p.IsEmpty() {
				continue
			}
			b.WriteString(boxStyle.Render(personView(slot, p)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("←/h/p previous  →/l/n next  s save  q quit"))
	b.WriteString("\n")
	return b.String()
}

func line(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func headerView(h *record.Headstone) string {
	var b strings.Builder
	b.WriteString(line("Sequence ID", h.SequenceID))
	b.WriteString(line("Primary key", h.PrimaryKey))
	b.WriteString(line("Cemetery", h.CemeteryName))
	b.WriteString(line("Section / Row / Site", strings.Join([]string{h.BurialSectionNumber, h.RowNumber, h.GravesiteNumber}, " / ")))
	if h.WallID != "" {
		b.WriteString(line("Wall", h.WallID))
	}
	b.WriteString(line("Marker type", h.MarkerType))
	b.WriteString(line("Emblems", strings.TrimSpace(h.Emblem1+" "+h.Emblem2)))
	b.WriteString(line("Images", strings.TrimSpace(h.Image1FileName+" "+h.Image2FileName)))
	return strings.TrimSuffix(b.String(), "\n")
}

func personView(slot int, p *record.Person) string {
	var b strings.Builder
	title := "Primary decedent"
	if slot > 0 {
		title = fmt.Sprintf("Decedent %d", slot+1)
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(line("Name", p.FullName()))
	b.WriteString(line("Location", p.Location))
	b.WriteString(line("Born / Died", p.BirthDate+" / "+p.DeathDate))
	if v := joinSet(p.Ranks); v != "" {
		b.WriteString(line("Rank", v))
	}
	if v := joinSet(append(append([]string{}, p.Awards...), p.AwardCustom)); v != "" {
		b.WriteString(line("Awards", v))
	}
	if v := joinSet(p.Wars); v != "" {
		b.WriteString(line("Wars", v))
	}
	if v := joinSet(append(append([]string{}, p.Branches...), p.BranchUnitCustom)); v != "" {
		b.WriteString(line("Branch", v))
	}
	if p.Inscription != "" {
		b.WriteString(line("Inscription", p.Inscription))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func joinSet(values []string) string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}

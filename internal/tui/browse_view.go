package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
)

// View renders the current screen (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.loading.View()
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateRegions:
		return m.renderRegionsView()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m BrowseModel) renderListView() string {
	snap := m.view.Snapshot()

	sections := []string{
		TitleStyle.Render("Adoptable Animals"),
		m.table.View(),
		m.renderPaginationFooter(snap),
		SubtleStyle.Render("←/→ page | f filter | enter detail | r reload | q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowseModel) renderPaginationFooter(snap catalog.Snapshot) string {
	region := snap.Region
	if region == catalog.RegionAll {
		region = "all regions"
	}
	footer := fmt.Sprintf("Page %d/%d | %d animals | %s",
		snap.Page, snap.TotalPages, snap.TotalRecords, region)
	return LabelStyle.Render(footer)
}

func (m BrowseModel) renderRegionsView() string {
	var content strings.Builder
	content.WriteString(TitleStyle.Render("Select region"))
	content.WriteString("\n\n")

	for i, region := range m.regions {
		label := region
		if region == catalog.RegionAll {
			label = "All regions"
		}
		if i == m.regionCursor {
			content.WriteString(SelectedStyle.Render("> " + label))
		} else {
			content.WriteString(ValueStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("↑/↓ move | enter select | esc cancel"))
	return content.String()
}

func (m BrowseModel) renderDetailView() string {
	if m.selected == nil {
		return ""
	}
	a := m.selected

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(a.Name))
	content.WriteString("\n\n")

	writeField(&content, "Type", a.Type)
	writeField(&content, "Age", a.Age)
	writeField(&content, "Sex", a.Sex)
	writeField(&content, "Status", a.Status)
	writeField(&content, "Region", a.Region)
	writeField(&content, "Comuna", a.Comuna)
	writeField(&content, "Team", a.Team)
	writeField(&content, "Sterilized", a.Sterilized.String())
	writeField(&content, "Vaccinated", a.Vaccinated.String())

	// Free-text fields are untrusted and may embed markup. They are rendered
	// as plain text; nothing here interprets HTML.
	writeSection(&content, "PHYSICAL", a.PhysicalDesc)
	writeSection(&content, "PERSONALITY", a.PersonalityDesc)
	writeSection(&content, "NOTES", a.ExtraDesc)

	if a.DetailURL != "" {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render("More: "))
		content.WriteString(ValueStyle.Render(a.DetailURL))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("esc back | q quit"))

	return BoxStyle.Width(m.width - 4).Render(content.String())
}

func (m BrowseModel) renderErrorView() string {
	var content strings.Builder
	content.WriteString(ErrorStyle.Render("Could not load the animal listing."))
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render(fmt.Sprintf("(%v)", m.err)))
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render("r retry | q quit"))
	return content.String()
}

func writeField(content *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	content.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", label)))
	content.WriteString(ValueStyle.Render(value))
	content.WriteString("\n")
}

func writeSection(content *strings.Builder, header, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	content.WriteString("\n")
	content.WriteString(HeaderStyle.Render(header))
	content.WriteString("\n")
	content.WriteString(ValueStyle.Render(text))
	content.WriteString("\n")
}

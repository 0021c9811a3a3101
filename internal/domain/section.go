package domain

import (
	"slices"
	"strings"
)

// UncategorizedSection is the default bucket for pages without a section
// label. It is always listed first and never appears in a persisted order.
const UncategorizedSection = "Uncategorized"

// Section is a derived grouping of a project's pages by their label.
type Section struct {
	Name  string
	Pages []Page
}

// GroupPagesBySection groups pages by section label. The result starts with
// the Uncategorized bucket (present even when empty), followed by the labels
// listed in order, followed by any remaining labels alphabetically. Labels
// in order that no page uses are skipped. Page order inside a section follows
// the input order.
func GroupPagesBySection(pages []Page, order []string) []Section {
	byName := make(map[string][]Page)
	for _, p := range pages {
		name := p.SectionName()
		byName[name] = append(byName[name], p)
	}

	sections := []Section{{Name: UncategorizedSection, Pages: nonNilPages(byName[UncategorizedSection])}}
	seen := map[string]bool{UncategorizedSection: true}

	for _, name := range NormalizeSectionOrder(order) {
		if ps, ok := byName[name]; ok && !seen[name] {
			sections = append(sections, Section{Name: name, Pages: ps})
			seen[name] = true
		}
	}

	var rest []string
	for name := range byName {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		sections = append(sections, Section{Name: name, Pages: byName[name]})
	}

	return sections
}

// SectionNames returns the orderable section names of grouped sections,
// i.e. everything except the Uncategorized bucket.
func SectionNames(sections []Section) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Name != UncategorizedSection {
			names = append(names, s.Name)
		}
	}
	return names
}

// MoveSection returns a copy of order with name placed directly after the
// section named after, or first when after is empty. Unknown names, moving a
// section after itself and attempts to move Uncategorized leave the order
// unchanged.
func MoveSection(order []string, name, after string) []string {
	out := NormalizeSectionOrder(order)

	from := slices.Index(out, name)
	if from < 0 || name == after {
		return out
	}
	if after != "" && !slices.Contains(out, after) {
		return out
	}

	out = slices.Delete(out, from, from+1)
	to := 0
	if after != "" {
		to = slices.Index(out, after) + 1
	}
	return slices.Insert(out, to, name)
}

// NormalizeSectionOrder trims labels and drops blanks, duplicates and the
// Uncategorized bucket. The result is never nil.
func NormalizeSectionOrder(order []string) []string {
	out := make([]string, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		name = strings.TrimSpace(name)
		if name == "" || name == UncategorizedSection || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func nonNilPages(ps []Page) []Page {
	if ps == nil {
		return []Page{}
	}
	return ps
}

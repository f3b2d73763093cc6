package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/codex/pkg/hierarchy"
	"tableflip.dev/codex/pkg/tabs"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Forest renders one topic's tree, top nodes first, children indented
// under their parents. Collapsed nodes render their marker but not
// their subtree.
func (pp *PrettyPrint) Forest(m hierarchy.Map, top []string, names map[string]string, expanded map[string]bool) {
	if len(top) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, id := range top {
		pp.node(m, id, names, expanded, 0)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) node(m hierarchy.Map, id string, names map[string]string, expanded map[string]bool, depth int) {
	n, ok := m[id]
	if !ok {
		return
	}
	name := names[id]
	if name == "" {
		name = id
	}

	marker := "·"
	if len(n.Children) > 0 {
		marker = "▾"
		if expanded != nil && !expanded[id] {
			marker = "▸"
		}
	}

	line := color.New()
	indent := strings.Repeat("  ", depth)
	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Printf("%-38s", id)
	}
	_, _ = line.Printf("%s%s %s", indent, marker, name)
	if n.Type != "" {
		f := color.New(color.Faint)
		_, _ = f.Printf("  (%s)", n.Type)
	}
	fmt.Println("")

	if marker == "▸" {
		return
	}
	for _, child := range n.Children {
		pp.node(m, child, names, expanded, depth+1)
	}
}

// Tabs renders the tab list with the active tab highlighted.
func (pp *PrettyPrint) Tabs(list []*tabs.Tab) {
	if len(list) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no open tabs\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold("Tab"), bold("Showing"), bold("History"))
	for _, t := range list {
		active := ""
		if t.Active {
			active = "*"
		}
		id := t.ID
		if !pp.ShowID && len(id) > 8 {
			id = id[:8]
		}
		tbl.AddRow(active, id, t.Header.Name, fmt.Sprintf("%d/%d", t.HistoryIdx+1, len(t.History)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Recent renders the recently-viewed list, newest first.
func (pp *PrettyPrint) Recent(items tabs.RecentList) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing viewed yet\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Name"), bold("ID"))
	for _, item := range items {
		tbl.AddRow(item.Name, item.UUID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

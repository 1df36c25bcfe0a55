// Package render formats the bookmark tree and the merge report for the
// terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-bookmark-merger/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	folderStyle     = lipgloss.NewStyle().Bold(true)
	permanentStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	urlStyle        = lipgloss.NewStyle().Faint(true)
	enumeratorStyle = lipgloss.NewStyle().Faint(true).PaddingRight(1)
	headerStyle     = lipgloss.NewStyle().Bold(true).MarginTop(1)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Tree renders the children of root, normally the permanent folders. The
// invisible root itself is not printed.
func Tree(root *models.BookmarkTreeNode) string {
	if root == nil {
		return ""
	}

	sections := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		sections = append(sections, subtree(child).String())
	}
	return strings.Join(sections, "\n")
}

func subtree(node *models.BookmarkTreeNode) *tree.Tree {
	t := tree.Root(label(node)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)

	for _, child := range node.Children {
		if child.IsFolder() {
			t.Child(subtree(child))
			continue
		}
		t.Child(label(child))
	}
	return t
}

func label(node *models.BookmarkTreeNode) string {
	title := node.Title
	if title == "" {
		title = "(untitled)"
	}

	switch {
	case node.PermanentTag != "":
		return permanentStyle.Render(title)
	case node.IsFolder():
		return folderStyle.Render(title + "/")
	default:
		return title + " " + urlStyle.Render(node.URL)
	}
}

// Report renders the counters of a merge in a bordered box.
func Report(report models.MergeReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "updates:            %d (%d deletions ignored)\n", report.Updates, report.Deletions)
	fmt.Fprintf(&b, "guid matches:       %d\n", report.GUIDMatches)
	fmt.Fprintf(&b, "semantic matches:   %d\n", report.SemanticMatches)
	fmt.Fprintf(&b, "remote creations:   %d\n", report.RemoteCreations)
	fmt.Fprintf(&b, "local creations:    %d\n", report.LocalCreations)
	fmt.Fprintf(&b, "reassigned guids:   %d\n", report.ReassignedGUIDs)
	fmt.Fprintf(&b, "reuploads:          %d\n", report.Reuploads)
	fmt.Fprintf(&b, "orphans:            %d\n", report.Orphans)
	fmt.Fprintf(&b, "too deep:           %d\n", report.TooDeep)
	fmt.Fprintf(&b, "non-folder parents: %d\n", report.NonFolderChildren)
	fmt.Fprintf(&b, "skipped permanent:  %d", report.SkippedPermanentFolders)

	for _, line := range countLines("invalid", report.Invalid) {
		b.WriteString("\n" + line)
	}
	duplicates := make(map[string]int, len(report.Duplicates))
	for kind, n := range report.Duplicates {
		duplicates[string(kind)] = n
	}
	for _, line := range countLines("duplicate", duplicates) {
		b.WriteString("\n" + line)
	}

	return headerStyle.Render("Merge report") + "\n" + boxStyle.Render(b.String())
}

func countLines(prefix string, counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %s: %d", prefix, k, counts[k]))
	}
	return lines
}

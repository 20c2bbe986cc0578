package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

// rootGroup labels services that live at the workspace root or have no dir.
const rootGroup = "(workspace)"

// headerItem is a non-selectable group separator in the picker list.
type headerItem struct {
	label string
}

func (h headerItem) FilterValue() string { return "" }
func (h headerItem) Title() string       { return h.label }
func (h headerItem) Description() string { return "" }

// groupKey returns the parent directory of a service, e.g. "services" for
// "services/users".
func groupKey(row render.Row) string {
	if row.Dir == "" {
		return rootGroup
	}
	parent := filepath.ToSlash(filepath.Dir(filepath.Clean(row.Dir)))
	if parent == "." || parent == "/" {
		return rootGroup
	}
	return parent
}

// buildGroupedItems groups services by parent directory and returns list
// items with headerItem separators. Services keep their assignment order
// within a group.
func buildGroupedItems(rows []render.Row) []list.Item {
	if len(rows) == 0 {
		return nil
	}

	type group struct {
		key  string
		rows []render.Row
	}
	groupMap := make(map[string]*group)
	for _, row := range rows {
		key := groupKey(row)
		g, ok := groupMap[key]
		if !ok {
			g = &group{key: key}
			groupMap[key] = g
		}
		g.rows = append(g.rows, row)
	}

	// Workspace root first, the rest alphabetically
	groups := make([]*group, 0, len(groupMap))
	for _, g := range groupMap {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if (groups[i].key == rootGroup) != (groups[j].key == rootGroup) {
			return groups[i].key == rootGroup
		}
		return groups[i].key < groups[j].key
	})

	var items []list.Item
	for _, g := range groups {
		items = append(items, headerItem{label: shortenGroupKey(g.key)})
		for _, row := range g.rows {
			items = append(items, serviceItem{row: row})
		}
	}

	return items
}

// headerStyle is the style for group header items.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("241")).
	PaddingLeft(2)

// serviceDelegate draws services with the default two-line layout and
// group headers as a single dim label.
type serviceDelegate struct {
	list.DefaultDelegate
}

func newServiceDelegate() serviceDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedStyle
	d.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return serviceDelegate{DefaultDelegate: d}
}

func (d serviceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if h, ok := item.(headerItem); ok {
		fmt.Fprint(w, headerStyle.Render(h.label))
		return
	}
	d.DefaultDelegate.Render(w, m, index, item)
}

// nearestService returns the index of the closest serviceItem to idx,
// looking in direction first and then the other way. It returns -1 when the
// list holds only headers.
func nearestService(items []list.Item, idx, direction int) int {
	for _, step := range []int{direction, -direction} {
		for i := idx; i >= 0 && i < len(items); i += step {
			if _, ok := items[i].(serviceItem); ok {
				return i
			}
		}
	}
	return -1
}

// skipHeaders moves the cursor off a headerItem. direction is 1 when the
// user moved down and -1 when they moved up.
func skipHeaders(l *list.Model, direction int) {
	if !isHeaderSelected(l) {
		return
	}
	if i := nearestService(l.VisibleItems(), l.Index(), direction); i >= 0 {
		l.Select(i)
	}
}

// isHeaderSelected returns true if the currently selected item is a headerItem.
func isHeaderSelected(l *list.Model) bool {
	_, ok := l.SelectedItem().(headerItem)
	return ok
}

// navigationDirection returns -1 for keys that move the cursor up and 1
// for everything else.
func navigationDirection(msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k", "pgup", "home", "g":
		return -1
	}
	return 1
}

// shortenGroupKey keeps the last two components of a group path.
func shortenGroupKey(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

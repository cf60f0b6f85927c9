package navbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidmatch/internal/app/ui/navigation"
)

// recorder collects every reported page id
type recorder struct {
	calls []string
}

func (r *recorder) report(pageID string) {
	r.calls = append(r.calls, pageID)
}

func newTestBar() (*Bar, *recorder) {
	rec := &recorder{}
	return New(rec.report), rec
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func activeIDs(items []Item) []string {
	var ids []string
	for _, item := range items {
		if item.Active {
			ids = append(ids, item.ID)
		}
	}

	return ids
}

func Test_New_NilCallback(t *testing.T) {
	bar := New(nil)

	assert.NotPanics(t, func() {
		bar.Activate(navigation.PageSearch)
		bar.Update(runeKey('2'), navigation.PageDashboard)
	})
}

func Test_Items_KnownPageHighlightsExactlyOne(t *testing.T) {
	bar, _ := newTestBar()

	for _, id := range navigation.IDs() {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, []string{id}, activeIDs(bar.Items(id)))
		})
	}
}

func Test_Items_UnknownPageHighlightsNone(t *testing.T) {
	bar, _ := newTestBar()

	tests := []struct {
		name string
		page string
	}{
		{name: "empty", page: ""},
		{name: "unknown id", page: "unknown-id"},
		{name: "different case", page: "Dashboard"},
		{name: "trailing space", page: "search "},
		{name: "label instead of id", page: "Buscar & Reavaliar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := bar.Items(tt.page)

			assert.Len(t, items, 4)
			assert.Empty(t, activeIDs(items))
		})
	}
}

func Test_Items_OrderIsStable(t *testing.T) {
	bar, _ := newTestBar()
	expected := []string{navigation.PageDashboard, navigation.PageSearch, navigation.PageAnalytics, navigation.PageConfig}

	for _, page := range append(navigation.IDs(), "", "unknown-id") {
		items := bar.Items(page)

		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}

		assert.Equal(t, expected, ids, page)
	}
}

func Test_Activate_ReportsOnce(t *testing.T) {
	for _, id := range navigation.IDs() {
		t.Run(id, func(t *testing.T) {
			bar, rec := newTestBar()

			bar.Activate(id)

			assert.Equal(t, []string{id}, rec.calls)
		})
	}
}

func Test_Update_PageKeys(t *testing.T) {
	ids := navigation.IDs()

	for i, id := range ids {
		for _, current := range []string{navigation.PageDashboard, id, "unknown-id"} {
			t.Run(id+" from "+current, func(t *testing.T) {
				bar, rec := newTestBar()

				handled := bar.Update(runeKey(rune('1'+i)), current)

				assert.True(t, handled)
				assert.Equal(t, []string{id}, rec.calls)
			})
		}
	}
}

func Test_Update_ReselectActiveStillReports(t *testing.T) {
	bar, rec := newTestBar()

	bar.Update(runeKey('1'), navigation.PageDashboard)
	bar.Update(runeKey('1'), navigation.PageDashboard)

	assert.Equal(t, []string{navigation.PageDashboard, navigation.PageDashboard}, rec.calls)
}

func Test_Update_NextPrev(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		current  string
		expected string
	}{
		{name: "right from dashboard", msg: tea.KeyMsg{Type: tea.KeyRight}, current: navigation.PageDashboard, expected: navigation.PageSearch},
		{name: "l from analytics", msg: runeKey('l'), current: navigation.PageAnalytics, expected: navigation.PageConfig},
		{name: "tab wraps from config", msg: tea.KeyMsg{Type: tea.KeyTab}, current: navigation.PageConfig, expected: navigation.PageDashboard},
		{name: "left from search", msg: tea.KeyMsg{Type: tea.KeyLeft}, current: navigation.PageSearch, expected: navigation.PageDashboard},
		{name: "h wraps from dashboard", msg: runeKey('h'), current: navigation.PageDashboard, expected: navigation.PageConfig},
		{name: "shift+tab from config", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, current: navigation.PageConfig, expected: navigation.PageAnalytics},
		{name: "next from unknown", msg: tea.KeyMsg{Type: tea.KeyRight}, current: "unknown-id", expected: navigation.PageDashboard},
		{name: "prev from unknown", msg: tea.KeyMsg{Type: tea.KeyLeft}, current: "", expected: navigation.PageConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, rec := newTestBar()

			handled := bar.Update(tt.msg, tt.current)

			assert.True(t, handled)
			assert.Equal(t, []string{tt.expected}, rec.calls)
		})
	}
}

func Test_Update_UnrelatedInput(t *testing.T) {
	bar, rec := newTestBar()

	msgs := []tea.Msg{
		runeKey('x'),
		runeKey('5'),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.WindowSizeMsg{Width: 80, Height: 24},
		nil,
	}

	for _, msg := range msgs {
		assert.False(t, bar.Update(msg, navigation.PageDashboard))
	}

	assert.Empty(t, rec.calls)
}

func Test_Update_MenuToggleIsNoop(t *testing.T) {
	bar, rec := newTestBar()
	menu := bar.menuZone()

	assert.True(t, bar.Update(runeKey('m'), navigation.PageDashboard))
	assert.True(t, bar.Update(leftClick(menu.Start, 0), navigation.PageDashboard))

	assert.Empty(t, rec.calls)
	assert.Equal(t, bar.View(navigation.PageDashboard, 100), New(nil).View(navigation.PageDashboard, 100))
}

func Test_Update_MouseClick(t *testing.T) {
	bar, _ := newTestBar()
	zones := bar.zones()
	require.Len(t, zones, 4)

	for _, z := range zones {
		for _, x := range []int{z.Start, (z.Start + z.End) / 2, z.End - 1} {
			rec := &recorder{}
			clickBar := New(rec.report)

			handled := clickBar.Update(leftClick(x, 0), navigation.PageDashboard)

			assert.True(t, handled)
			assert.Equal(t, []string{z.ID}, rec.calls, "x=%d", x)
		}
	}
}

func Test_Update_MouseIgnored(t *testing.T) {
	bar, rec := newTestBar()
	first := bar.zones()[0]

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{name: "brand area", msg: leftClick(0, 0)},
		{name: "gap between tabs", msg: leftClick(first.End, 0)},
		{name: "indicator row", msg: leftClick(first.Start, 1)},
		{name: "content area", msg: leftClick(first.Start, 5)},
		{name: "right button", msg: tea.MouseMsg{X: first.Start, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{name: "release", msg: tea.MouseMsg{X: first.Start, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{name: "motion", msg: tea.MouseMsg{X: first.Start, Y: 0, Action: tea.MouseActionMotion}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, bar.Update(tt.msg, navigation.PageDashboard))
		})
	}

	assert.Empty(t, rec.calls)
}

func Test_View_LabelsInOrder(t *testing.T) {
	bar, _ := newTestBar()
	view := bar.View(navigation.PageAnalytics, 120)

	last := -1
	for _, d := range navigation.Destinations() {
		idx := strings.Index(view, d.Label)
		require.GreaterOrEqual(t, idx, 0, d.Label)
		assert.Greater(t, idx, last, d.Label)
		last = idx

		assert.Contains(t, view, d.Icon.Glyph())
	}
}

func Test_View_IndicatorUnderActiveTab(t *testing.T) {
	bar, _ := newTestBar()
	zones := bar.zones()

	for i, id := range navigation.IDs() {
		t.Run(id, func(t *testing.T) {
			lines := strings.Split(bar.View(id, 120), "\n")
			require.Len(t, lines, Height)

			rule := []rune(lines[1])
			for x, r := range rule {
				inActive := x >= zones[i].Start && x < zones[i].End
				assert.Equal(t, inActive, r == []rune(activeRule)[0], "column %d", x)
			}
		})
	}
}

func Test_View_UnknownPageHasNoIndicator(t *testing.T) {
	bar, _ := newTestBar()

	for _, page := range []string{"", "unknown-id"} {
		view := bar.View(page, 120)

		assert.NotContains(t, view, activeRule)
		for _, d := range navigation.Destinations() {
			assert.Contains(t, view, d.Label)
		}
	}
}

func Test_View_Width(t *testing.T) {
	bar, _ := newTestBar()
	natural := lipgloss.Width(strings.Split(bar.View(navigation.PageDashboard, 0), "\n")[0])

	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "wider than content", width: natural + 20, expected: natural + 20},
		{name: "exact", width: natural, expected: natural},
		{name: "narrower than content", width: 10, expected: natural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, line := range strings.Split(bar.View(navigation.PageSearch, tt.width), "\n") {
				assert.Equal(t, tt.expected, lipgloss.Width(line))
			}
		})
	}
}

func Test_View_DoesNotReport(t *testing.T) {
	bar, rec := newTestBar()

	_ = bar.View(navigation.PageSearch, 100)
	_ = bar.Items(navigation.PageSearch)

	assert.Empty(t, rec.calls)
}

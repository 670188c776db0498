// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/artistfinder/catalog"
)

// number of styles drawn in the bar chart
const dashboardStyles = 8

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// computeHeaderRatio determines the share of vertical space for the clock
// row. It keeps at least three lines and no more than a quarter of the
// screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	minLines := 3.0
	ratio := minLines / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

// minimumHeight is the height of a perfectly balanced tree holding n keys.
func minimumHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(math.Log2(float64(n)))) + 1
}

// statsText renders the tree statistics paragraph.
func statsText(f *catalog.Finder, path string, loadedAt time.Time) string {
	return fmt.Sprintf(
		"[File](fg:green)       %s\n"+
			"[Loaded](fg:green)     %s\n"+
			"[Mode](fg:green)       %s\n"+
			"[Artists](fg:green)    %d\n"+
			"[Height](fg:green)     %d (minimum %d)\n"+
			"[Rotations](fg:green)  %d",
		path, FormatDateTime(loadedAt), f.Mode(), f.Len(), f.Height(), minimumHeight(f.Len()), f.Tree().Rotations(),
	)
}

// idRows lists every ID in ascending order.
func idRows(f *catalog.Finder) []string {
	ids := f.Sorted()
	rows := make([]string, len(ids))
	for i, id := range ids {
		rows[i] = strconv.Itoa(id)
	}
	return rows
}

// detailRows describes the artist behind a row of the ID list.
func detailRows(f *catalog.Finder, row string) []string {
	id, err := strconv.Atoi(row)
	if err != nil {
		return []string{"Select an artist to see its details"}
	}
	a, err := f.Lookup(id)
	if err != nil {
		return []string{err.Error()}
	}
	rows := []string{
		fmt.Sprintf("[Name](fg:green)       %s", a.Name),
		fmt.Sprintf("[Gender](fg:green)     %s", a.Gender),
		fmt.Sprintf("[Country](fg:green)    %s", a.Country),
		fmt.Sprintf("[Playcount](fg:green)  %d", a.Playcount),
		"[Styles](fg:green)",
	}
	for _, s := range a.StyleList() {
		rows = append(rows, "  • "+s)
	}
	return rows
}

// styleBars turns the style histogram into bar chart data.
func styleBars(top []catalog.StyleCount) (labels []string, data []float64) {
	for _, sc := range top {
		labels = append(labels, sc.Style)
		data = append(data, float64(sc.Count))
	}
	return labels, data
}

// toggleBorders moves the focus border between the two lists.
func toggleBorders(w1 *widgets.List, w2 *widgets.List) {
	if w1.BorderStyle == StyleBorder(true) {
		w1.BorderStyle = StyleBorder(false)
		w2.BorderStyle = StyleBorder(true)
	} else {
		w1.BorderStyle = StyleBorder(true)
		w2.BorderStyle = StyleBorder(false)
	}
}

// dashboard holds the widgets of the termui view. Its methods only change
// widget state; drawing is left to the event loop in run.
type dashboard struct {
	finder *catalog.Finder

	grid       *ui.Grid
	clockPara  *widgets.Paragraph
	statsPara  *widgets.Paragraph
	idList     *widgets.List
	detailList *widgets.List
	chart      *widgets.BarChart

	headerRatio   float64
	focusOnDetail bool
}

func newDashboard(f *catalog.Finder, path string, loadedAt time.Time, width, height int) *dashboard {
	scheme := GetColorScheme()
	d := &dashboard{finder: f}

	d.clockPara = widgets.NewParagraph()
	d.clockPara.Title = " Now "
	d.clockPara.Text = FormatClock(loadedAt)
	d.clockPara.BorderStyle = StyleBorder(false)

	d.statsPara = widgets.NewParagraph()
	d.statsPara.Title = " Tree "
	d.statsPara.Text = statsText(f, path, loadedAt)
	d.statsPara.TextStyle = StyleText()
	d.statsPara.BorderStyle = StyleBorder(false)

	d.idList = widgets.NewList()
	d.idList.Title = " Artist IDs "
	d.idList.Rows = idRows(f)
	d.idList.SelectedRow = 0
	d.idList.SelectedRowStyle = StylePrimary()
	d.idList.BorderStyle = StyleBorder(true)

	d.detailList = widgets.NewList()
	d.detailList.Title = " Artist "
	d.detailList.TextStyle = StyleText()
	d.detailList.SelectedRowStyle = StyleText()
	d.detailList.WrapText = true
	d.detailList.BorderStyle = StyleBorder(false)
	d.refreshDetail()

	d.chart = widgets.NewBarChart()
	d.chart.Title = " Top Styles "
	d.chart.TitleStyle = ui.NewStyle(scheme.Accent)
	d.chart.Labels, d.chart.Data = styleBars(f.TopStyles(dashboardStyles))
	d.chart.BarWidth = 9
	d.chart.BarColors = scheme.Bars
	d.chart.LabelStyles = []ui.Style{StyleTextMuted()}
	d.chart.NumStyles = []ui.Style{ui.NewStyle(scheme.OnPrimary)}
	d.chart.BorderStyle = StyleBorder(false)

	d.grid = ui.NewGrid()
	d.resize(width, height)
	return d
}

// layout places the widgets. Grid.Set appends, so the old items go first.
func (d *dashboard) layout() {
	d.grid.Items = nil
	d.grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.35, d.statsPara),
			ui.NewRow(0.65, d.idList),
		),
		ui.NewCol(0.7,
			ui.NewRow(d.headerRatio, d.clockPara),
			ui.NewRow((1-d.headerRatio)/2, d.detailList),
			ui.NewRow((1-d.headerRatio)/2, d.chart),
		),
	)
}

func (d *dashboard) resize(width, height int) {
	d.grid.SetRect(0, 0, width, height)
	d.headerRatio = computeHeaderRatio(height)
	d.layout()
}

func (d *dashboard) focused() *widgets.List {
	if d.focusOnDetail {
		return d.detailList
	}
	return d.idList
}

// selectedID returns the ID under the cursor of the ID list.
func (d *dashboard) selectedID() (int, bool) {
	if len(d.idList.Rows) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(d.idList.Rows[d.idList.SelectedRow])
	return id, err == nil
}

func (d *dashboard) refreshDetail() {
	if len(d.idList.Rows) == 0 {
		d.detailList.Rows = []string{"The catalog is empty"}
		return
	}
	d.detailList.Rows = detailRows(d.finder, d.idList.Rows[d.idList.SelectedRow])
	d.detailList.SelectedRow = 0
}

// tick advances the clock.
func (d *dashboard) tick(t time.Time) {
	d.clockPara.Text = FormatClock(t)
}

// handle applies a keyboard or resize event and reports whether the user
// asked to quit.
func (d *dashboard) handle(e ui.Event) bool {
	switch e.ID {
	case "<C-c>", "<Escape>", "q":
		return true
	case "<C-z>":
		if id, ok := d.selectedID(); ok {
			if err := clipboard.WriteAll(d.finder.Show(id)); err != nil {
				log.Printf("%sFailed to copy text: %v%s", Warning, err, Reset)
			}
		}
	case "<Tab>":
		d.focusOnDetail = !d.focusOnDetail
		toggleBorders(d.idList, d.detailList)
	case "<Up>", "k":
		d.focused().ScrollUp()
	case "<Down>", "j":
		d.focused().ScrollDown()
	case "<PageUp>":
		d.focused().ScrollPageUp()
	case "<PageDown>":
		d.focused().ScrollPageDown()
	case "<Home>", "<C-k>":
		d.focused().ScrollTop()
	case "<End>", "<C-j>":
		d.focused().ScrollBottom()
	case "<Resize>":
		if payload, ok := e.Payload.(ui.Resize); ok {
			d.resize(payload.Width, payload.Height)
		} else {
			d.resize(ui.TerminalDimensions())
		}
	}

	if !d.focusOnDetail {
		d.refreshDetail()
	}
	return false
}

// run draws the dashboard for a catalog loaded at loadedAt until the user
// quits. Clock ticks and key events are both served by this loop, so
// nothing renders concurrently.
func run(f *catalog.Finder, path string, loadedAt time.Time) {
	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	termWidth, termHeight := ui.TerminalDimensions()
	d := newDashboard(f, path, loadedAt, termWidth, termHeight)
	ui.Render(d.grid)

	uiEvents := ui.PollEvents()
	clockTi := time.NewTicker(1 * time.Second)
	defer clockTi.Stop()

	for {
		select {
		case t := <-clockTi.C:
			d.tick(t)
			ui.Render(d.clockPara)
		case e := <-uiEvents:
			if d.handle(e) {
				return
			}
			if e.ID == "<Resize>" {
				ui.Clear()
			}
			ui.Render(d.grid)
		}
	}
}

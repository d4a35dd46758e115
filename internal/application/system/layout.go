package system

import "strings"

// Debug font metrics (ebitenutil.DebugPrint glyphs)
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// Menu layout metrics (pixels)
const (
	menuMargin   = 10
	headlinePadX = 4
	closeWidth   = 3 * GlyphWidth
)

// HitKind classifies what a click landed on
type HitKind int

const (
	HitNone HitKind = iota
	HitHeadline
	HitClose
)

// Hit is the result of hit-testing the menu
type Hit struct {
	Kind    HitKind
	EntryID string
}

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// EntryLayout is where one visible entry is drawn
type EntryLayout struct {
	EntryID  string
	Label    string
	Headline Rect
	Close    Rect // zero unless the entry is open
	Body     Rect // zero unless the entry is open
	Lines    []string
	Open     bool
}

// MenuLayout is the on-screen arrangement of the menu for one frame
type MenuLayout struct {
	Entries []EntryLayout
}

// LayoutMenu stacks visible headlines in the bottom-left corner. An open
// (raised) entry slides up to make room for its body below the headline.
func LayoutMenu(menu *MenuSystem, screenW, screenH int) *MenuLayout {
	layout := &MenuLayout{}

	var visible []int
	for i := range menu.Entries() {
		if menu.View(i).Visible {
			visible = append(visible, i)
		}
	}

	y := screenH - menuMargin
	for n := len(visible) - 1; n >= 0; n-- {
		i := visible[n]
		e := menu.Entries()[i]
		v := menu.View(i)

		el := EntryLayout{
			EntryID: e.ID,
			Label:   e.Label,
			Open:    v.Open,
		}

		headW := len(e.Label)*GlyphWidth + 2*headlinePadX
		if v.Open {
			headW += closeWidth
		}
		if maxW := screenW - 2*menuMargin; headW > maxW && maxW > 0 {
			headW = maxW
		}

		if v.Open {
			el.Lines = wrapText(e.Body, (screenW-2*menuMargin)/GlyphWidth)
			bodyH := len(el.Lines) * GlyphHeight
			if v.Raised {
				y -= bodyH
			}
			el.Body = Rect{X: menuMargin, Y: y, W: screenW - 2*menuMargin, H: bodyH}
		}

		y -= GlyphHeight
		el.Headline = Rect{X: menuMargin, Y: y, W: headW, H: GlyphHeight}
		if v.Open {
			el.Close = Rect{X: menuMargin + headW - closeWidth, Y: y, W: closeWidth, H: GlyphHeight}
			if !v.Raised {
				el.Body.Y = y + GlyphHeight
			}
		}

		// Prepend so Entries stays in display order
		layout.Entries = append([]EntryLayout{el}, layout.Entries...)
	}

	return layout
}

// HitTest finds what lies under the point. The close button wins over
// the headline it sits in.
func (l *MenuLayout) HitTest(x, y int) Hit {
	for _, el := range l.Entries {
		if el.Open && el.Close.Contains(x, y) {
			return Hit{Kind: HitClose, EntryID: el.EntryID}
		}
		if el.Headline.Contains(x, y) {
			return Hit{Kind: HitHeadline, EntryID: el.EntryID}
		}
	}
	return Hit{Kind: HitNone}
}

// wrapText splits text into lines of at most width runes, breaking on spaces
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
			for len(line) > width {
				lines = append(lines, line[:width])
				line = line[width:]
			}
		}
		lines = append(lines, line)
	}
	return lines
}

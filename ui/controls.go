package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/systems"
)

// KeyHint pairs a key label with what it does.
type KeyHint struct {
	Keys   string
	Action string
}

// sceneHints are the non-driving keys handled by the game loop.
var sceneHints = []KeyHint{
	{Keys: "C", Action: "Focus / trail camera"},
	{Keys: "Space", Action: "Pause"},
	{Keys: "Home", Action: "Reset tank"},
	{Keys: "Esc", Action: "Deselect entity"},
	{Keys: "F11", Action: "Fullscreen"},
}

// controlRow is one line of the legend. Header rows carry only a title;
// toggle rows also show whether their overlay is on.
type controlRow struct {
	header string
	hint   KeyHint
	toggle bool
	on     bool
}

// ControlsPanel is the key legend: driving keys, scene keys and the
// overlay toggles with their current state.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a legend panel at x, y.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

func legendRows(overlays *OverlayRegistry) []controlRow {
	rows := []controlRow{{header: "Driving"}}
	for _, b := range systems.DriveBindings {
		rows = append(rows, controlRow{hint: KeyHint{Keys: b.Labels, Action: b.Action}})
	}
	rows = append(rows, controlRow{header: "Scene"})
	for _, h := range sceneHints {
		rows = append(rows, controlRow{hint: h})
	}
	rows = append(rows, controlRow{header: "Overlays"})
	for _, desc := range overlays.descriptors {
		rows = append(rows, controlRow{
			hint:   KeyHint{Keys: desc.KeyLabel, Action: desc.Name},
			toggle: true,
			on:     overlays.IsEnabled(desc.ID),
		})
	}
	return rows
}

// Draw renders the legend and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	rows := legendRows(overlays)
	c.renderer.DrawPanel(c.x, c.y, c.width, int32(len(rows))*t.LineHeight+2*t.Padding)

	x := c.x + t.Padding
	y := c.y + t.Padding
	keyWidth := int32(64)
	for _, row := range rows {
		if row.header != "" {
			rl.DrawText(row.header, x, y, t.HeaderFontSize, t.SectionHeader)
			y += t.LineHeight
			continue
		}
		rl.DrawText(fmt.Sprintf("[%s]", row.hint.Keys), x, y, t.FontSize, t.KeyColor)
		actionX := x + keyWidth
		actionColor := t.LabelColor
		if row.toggle {
			dot := t.OffColor
			if row.on {
				dot = t.OnColor
				actionColor = t.ValueColor
			}
			rl.DrawRectangle(actionX, y+3, 8, 8, dot)
			actionX += 14
		}
		rl.DrawText(row.hint.Action, actionX, y, t.FontSize, actionColor)
		y += t.LineHeight
	}
	return y + t.Padding
}

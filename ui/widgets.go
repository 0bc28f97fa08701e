package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws panels and descriptor-driven sections with one theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSection draws the section title and one row per field, and returns
// the Y below the last row. Hidden sections draw nothing.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return y
	}
	t := r.Theme
	if sd.Title != "" {
		rl.DrawText(sd.Title, x, y, t.HeaderFontSize, t.SectionHeader)
		y += t.LineHeight
	}
	for _, fd := range sd.Fields {
		rl.DrawText(fd.Label+":", x, y, t.FontSize, t.LabelColor)
		valueX := x + t.LabelWidth
		if fd.Widget == WidgetGauge {
			valueX = r.drawGauge(valueX, y, fd, data, width-t.LabelWidth)
		}
		rl.DrawText(fieldText(fd, data), valueX, y, t.FontSize, t.ValueColor)
		y += t.LineHeight
	}
	return y
}

// SectionHeight returns the height DrawSection will use for data.
func (r *Renderer) SectionHeight(sd SectionDescriptor, data any) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return 0
	}
	rows := int32(len(sd.Fields))
	if sd.Title != "" {
		rows++
	}
	return rows * r.Theme.LineHeight
}

// drawGauge fills a track in proportion to the field's value within its
// range, leaving room for the value text. It returns where the text goes.
func (r *Renderer) drawGauge(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	track := width - 50
	var ratio float32
	if fd.Getter != nil && fd.Range.Max > fd.Range.Min {
		ratio = (fd.Getter(data) - fd.Range.Min) / (fd.Range.Max - fd.Range.Min)
		ratio = min(max(ratio, 0), 1)
	}
	top := y + (r.Theme.LineHeight-r.Theme.GaugeHeight)/2 - 1
	rl.DrawRectangle(x, top, track, r.Theme.GaugeHeight, r.Theme.GaugeBg)
	rl.DrawRectangle(x, top, int32(float32(track)*ratio), r.Theme.GaugeHeight, r.Theme.GaugeFill)
	return x + track + 5
}

func fieldText(fd FieldDescriptor, data any) string {
	switch {
	case fd.TextGetter != nil:
		return fd.TextGetter(data)
	case fd.Getter == nil:
		return ""
	case fd.Format != "":
		return fmt.Sprintf(fd.Format, fd.Getter(data))
	default:
		return fmt.Sprintf("%.0f", fd.Getter(data))
	}
}

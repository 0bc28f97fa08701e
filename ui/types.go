// Package ui draws the heads-up display. Panels are described by field
// descriptors so layouts can change alongside the data they show.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText  WidgetType = iota // label and formatted value
	WidgetGauge                   // label, filled track over Range, value
)

// FieldRange is the span a gauge fills across.
type FieldRange struct {
	Min float32
	Max float32
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	Label      string
	Widget     WidgetType
	Format     string            // Printf format for Getter values
	Range      FieldRange        // gauges only
	Getter     func(any) float32 // numeric fields
	TextGetter func(any) string  // text fields, wins over Getter
}

// SectionDescriptor is a titled group of fields shown only while Visible
// (when set) reports true.
type SectionDescriptor struct {
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	KeyColor       rl.Color
	GaugeBg        rl.Color
	GaugeFill      rl.Color
	OnColor        rl.Color
	OffColor       rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	GaugeHeight    int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		KeyColor:       rl.Color{R: 150, G: 170, B: 190, A: 255},
		GaugeBg:        rl.Color{R: 40, G: 40, B: 40, A: 255},
		GaugeFill:      rl.Color{R: 100, G: 150, B: 200, A: 255},
		OnColor:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		OffColor:       rl.Color{R: 80, G: 80, B: 80, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		GaugeHeight:    10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title   string
	Frame   int32
	FPS     int32
	Paused  bool
	Camera  string
	Keys    string
	HasTank bool
	TankX   float64
	TankY   float64
	TankZ   float64
	Angle   int

	// Banner text from the data panel
	ShowBanner bool
	Banner     string
	BannerSize float32

	ScreenWidth  int32
	ScreenHeight int32
}

var tankSection = SectionDescriptor{
	Title:   "Tank",
	Visible: func(d any) bool { return d.(HUDData).HasTank },
	Fields: []FieldDescriptor{
		{Label: "X", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float32 { return float32(d.(HUDData).TankX) }},
		{Label: "Y", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float32 { return float32(d.(HUDData).TankY) }},
		{Label: "Angle", Widget: WidgetGauge, Range: FieldRange{Min: 0, Max: 360}, Getter: func(d any) float32 { return float32(d.(HUDData).Angle) }},
		{Label: "Keys", Widget: WidgetText, TextGetter: func(d any) string { return d.(HUDData).Keys }},
		{Label: "Camera", Widget: WidgetText, TextGetter: func(d any) string { return d.(HUDData).Camera }},
	},
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the title block and tank readout in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Frame: %d | FPS: %d", data.Frame, data.FPS), 10, 35, 16, rl.LightGray)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 55, 16, rl.Yellow)

	r := h.renderer
	width := int32(220)
	height := r.SectionHeight(tankSection, data) + r.Theme.Padding
	if height > r.Theme.Padding {
		r.DrawPanel(10, 78, width, height)
		r.DrawSection(10+r.Theme.Padding, 78+r.Theme.Padding/2, tankSection, data, width-2*r.Theme.Padding)
	}

	if data.ShowBanner && data.Banner != "" {
		size := int32(data.BannerSize)
		textWidth := rl.MeasureText(data.Banner, size)
		rl.DrawText(data.Banner, (data.ScreenWidth-textWidth)/2, data.ScreenHeight/3, size, rl.White)
	}
}

// PerfPanel renders per-phase frame timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	phases := []string{
		telemetry.PhaseInput, telemetry.PhaseTank, telemetry.PhaseCamera,
		telemetry.PhaseChunks, telemetry.PhaseRender, telemetry.PhaseTelemetry,
	}
	r.DrawPanel(p.x, p.y, 260, int32(len(phases))*14+58)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding

	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  Std: %s",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.StdTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range phases {
		pct := stats.PhasePct[name]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

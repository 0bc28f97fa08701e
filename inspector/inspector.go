// Package inspector draws the debug panels: a world inspector listing named
// entities with their components, and an editable data panel.
package inspector

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/inspect"
)

// Panel dimensions
const (
	PanelWidth   = 340
	PanelPadding = 10
	HeaderHeight = 30
	RowHeight    = 22
	maxRows      = 12
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Entry is one row of the world list.
type Entry struct {
	Entity ecs.Entity
	Name   string
}

// ComponentsFunc returns pointers to every component an entity carries.
type ComponentsFunc func(ecs.Entity) []any

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	visible     bool
	selected    ecs.Entity
	hasSelected bool
	scroll      int

	data     inspect.Data
	textEdit bool

	screenWidth  int32
	screenHeight int32
}

// NewInspector creates a new inspector instance.
func NewInspector(screenWidth, screenHeight int32, data inspect.Data, visible bool) *Inspector {
	data.Clamp()
	return &Inspector{
		visible:      visible,
		data:         data,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Toggle shows or hides both panels.
func (ins *Inspector) Toggle() {
	ins.visible = !ins.visible
}

// Visible reports whether the panels are drawn.
func (ins *Inspector) Visible() bool {
	return ins.visible
}

// Resize updates the screen dimensions used for panel placement.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.screenWidth = screenWidth
	ins.screenHeight = screenHeight
}

// Data returns the current data panel values.
func (ins *Inspector) Data() inspect.Data {
	return ins.data
}

// Select marks an entity as selected.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// HandleInput processes inspector keys. Escape clears the selection and the
// mouse wheel scrolls the entity list.
func (ins *Inspector) HandleInput(entries int) {
	if !ins.visible {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		ins.scroll -= int(wheel)
	}
	ins.scroll = max(0, min(ins.scroll, entries-maxRows))
}

// Draw renders the world panel on the left and the data panel on the right.
func (ins *Inspector) Draw(entries []Entry, componentsOf ComponentsFunc) {
	if !ins.visible {
		return
	}
	ins.drawWorld(entries, componentsOf)
	ins.drawData()
}

func (ins *Inspector) drawWorld(entries []Entry, componentsOf ComponentsFunc) {
	x := int32(PanelPadding)
	y := int32(PanelPadding + 100)
	height := ins.screenHeight - y - PanelPadding

	ins.drawPanel(x, y, height, "WORLD")

	cx := x + PanelPadding
	cy := y + HeaderHeight + PanelPadding

	end := min(len(entries), ins.scroll+maxRows)
	for _, entry := range entries[min(ins.scroll, end):end] {
		label := entry.Name
		if ins.hasSelected && entry.Entity == ins.selected {
			label = "> " + label
		}
		bounds := rl.Rectangle{X: float32(cx), Y: float32(cy), Width: PanelWidth - 2*PanelPadding, Height: RowHeight - 2}
		if gui.Button(bounds, label) {
			ins.Select(entry.Entity)
		}
		cy += RowHeight
	}
	if len(entries) > maxRows {
		rl.DrawText(fmt.Sprintf("%d-%d of %d", ins.scroll+1, end, len(entries)), cx, cy, 12, ColorTextDim)
		cy += 16
	}

	if !ins.hasSelected {
		return
	}
	comps := componentsOf(ins.selected)
	if comps == nil {
		// entity is gone
		ins.Deselect()
		return
	}

	cy += 6
	for _, comp := range comps {
		if cy > y+height-RowHeight {
			break
		}
		ins.drawSectionHeader(cx, cy, inspect.TypeName(comp))
		cy += 22
		for _, field := range inspect.ExtractFields(comp) {
			cy += DrawField(cx, cy, field)
		}
		cy += 4
	}
}

func (ins *Inspector) drawData() {
	x := ins.screenWidth - PanelWidth - PanelPadding
	y := int32(PanelPadding)

	ins.drawPanel(x, y, 150, "DATA")

	cx := float32(x + PanelPadding)
	cy := float32(y + HeaderHeight + PanelPadding)
	w := float32(PanelWidth - 2*PanelPadding)

	ins.data.ShouldRender = gui.CheckBox(rl.Rectangle{X: cx, Y: cy, Width: 18, Height: 18}, "should_render", ins.data.ShouldRender)
	cy += 28

	if gui.TextBox(rl.Rectangle{X: cx, Y: cy, Width: w, Height: 24}, &ins.data.Text, 64, ins.textEdit) {
		ins.textEdit = !ins.textEdit
	}
	cy += 34

	ins.data.Size = gui.SliderBar(
		rl.Rectangle{X: cx + 40, Y: cy, Width: w - 90, Height: 20},
		"size", fmt.Sprintf("%.1f", ins.data.Size),
		ins.data.Size, inspect.MinSize, inspect.MaxSize,
	)
	ins.data.Clamp()
}

func (ins *Inspector) drawPanel(x, y, height int32, title string) {
	rl.DrawRectangle(x, y, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(title, x+PanelPadding, y+7, 16, ColorHeaderText)
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

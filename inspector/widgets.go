package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tanks/inspect"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name string, value any, options map[string]string) int32 {
	text := inspect.FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 14, ColorText)
	return 18
}

// DrawBar renders a horizontal bar scaled across the field's min/max options.
func DrawBar(x, y int32, name string, value float32, options map[string]string) int32 {
	ratio := inspect.Ratio(value, options)

	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 90
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)

	fillColor := ColorBarFill
	if ratio < 0.3 {
		fillColor = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, fillColor)

	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawAngle renders a compass-style heading indicator. 0 degrees points up
// the screen, matching a tank driving along +Y.
func DrawAngle(x, y int32, name string, degrees float32) int32 {
	size := int32(40)
	centerX := x + 90 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	// screen Y grows downward
	rad := float64(degrees+90) * math.Pi / 180
	needleLen := float32(size/2 - 4)
	endX := float32(centerX) + needleLen*float32(math.Cos(rad))
	endY := float32(centerY) - needleLen*float32(math.Sin(rad))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: endX, Y: endY},
		2,
		ColorAngleNeedle,
	)

	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+90+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

// DrawBool renders an on/off indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	indicatorX := x + 90
	indicatorSize := int32(14)

	color := ColorBoolOff
	text := "OFF"
	if value {
		color = ColorBoolOn
		text = "ON"
	}

	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)

	return 18
}

// DrawField renders a field using its widget type.
func DrawField(x, y int32, field inspect.Field) int32 {
	switch field.Widget {
	case inspect.WidgetBar:
		if v, ok := inspect.GetFloatValue(field.Value); ok {
			return DrawBar(x, y, field.Name, v, field.Options)
		}
	case inspect.WidgetAngle:
		if v, ok := inspect.GetFloatValue(field.Value); ok {
			return DrawAngle(x, y, field.Name, v)
		}
	case inspect.WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return DrawBool(x, y, field.Name, v)
		}
	}
	return DrawLabel(x, y, field.Name, field.Value, field.Options)
}

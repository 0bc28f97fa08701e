package inspect

// Data is the free-form panel shown next to the world inspector.
type Data struct {
	ShouldRender bool    `inspect:"bool"`
	Text         string  `inspect:"label"`
	Size         float32 `inspect:"bar,min:42,max:100"`
}

// Size bounds.
const (
	MinSize float32 = 42
	MaxSize float32 = 100
)

// Clamp forces Size into [MinSize, MaxSize].
func (d *Data) Clamp() {
	if d.Size < MinSize {
		d.Size = MinSize
	}
	if d.Size > MaxSize {
		d.Size = MaxSize
	}
}

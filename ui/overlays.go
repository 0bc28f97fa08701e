package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable overlay.
type OverlayID string

const (
	OverlayInspector  OverlayID = "inspector"
	OverlayPerf       OverlayID = "perf"
	OverlayDebugLines OverlayID = "debug_lines"
	OverlayShadows    OverlayID = "shadows"
	OverlayControls   OverlayID = "controls"
)

// OverlayDescriptor ties an overlay to the key that toggles it.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32
	KeyLabel string
}

// OverlayRegistry holds overlay on/off state in legend order.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with every overlay off.
func NewOverlayRegistry() *OverlayRegistry {
	return &OverlayRegistry{
		descriptors: []OverlayDescriptor{
			{ID: OverlayInspector, Name: "Inspector", Key: rl.KeyF1, KeyLabel: "F1"},
			{ID: OverlayPerf, Name: "Frame timing", Key: rl.KeyF2, KeyLabel: "F2"},
			{ID: OverlayDebugLines, Name: "Axes & heading", Key: rl.KeyF3, KeyLabel: "F3"},
			{ID: OverlayShadows, Name: "Shadows", Key: rl.KeyF4, KeyLabel: "F4"},
			{ID: OverlayControls, Name: "This legend", Key: rl.KeyH, KeyLabel: "H"},
		},
		enabled: make(map[OverlayID]bool),
	}
}

func (r *OverlayRegistry) known(id OverlayID) bool {
	for _, desc := range r.descriptors {
		if desc.ID == id {
			return true
		}
	}
	return false
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled sets an overlay's state. Unknown IDs are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if r.known(id) {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// HandleInput toggles every overlay whose key was pressed this frame.
// It returns the IDs that changed.
func (r *OverlayRegistry) HandleInput() []OverlayID {
	var changed []OverlayID
	for _, desc := range r.descriptors {
		if rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
			changed = append(changed, desc.ID)
		}
	}
	return changed
}

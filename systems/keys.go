// Package systems implements the per-frame behaviour of the scene.
// Systems read a keyboard snapshot and mutate transforms in the ECS world;
// none of them touch the window or renderer.
package systems

import (
	"fmt"
	"strings"
)

// Key identifies a logical input.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	numKeys
)

var keyNames = [numKeys]string{"left", "right", "up", "down"}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey resolves a key name as written in config files.
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Key(i), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Binding labels the physical keys behind a logical key for the controls legend.
type Binding struct {
	Key    Key
	Labels string
	Action string
}

// DriveBindings lists every key TankInput reacts to. Down is parsed from
// scripts but moves nothing, so it has no entry.
var DriveBindings = []Binding{
	{Key: KeyUp, Labels: "Up / W", Action: "Drive forward"},
	{Key: KeyLeft, Labels: "Left / A", Action: "Turn left"},
	{Key: KeyRight, Labels: "Right / D", Action: "Turn right"},
}

// Keys reports which keys are held this frame.
type Keys interface {
	Pressed(k Key) bool
}

// KeySet is a per-frame keyboard snapshot.
type KeySet uint8

// NewKeySet returns a snapshot with the given keys held.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// ParseKeySet builds a snapshot from key names.
func ParseKeySet(names []string) (KeySet, error) {
	var s KeySet
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return 0, err
		}
		s = s.With(k)
	}
	return s, nil
}

// With returns s with k held.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Pressed implements Keys.
func (s KeySet) Pressed(k Key) bool {
	return s&(1<<k) != 0
}

// String lists the held keys, e.g. "left+up".
func (s KeySet) String() string {
	var held []string
	for k := Key(0); k < numKeys; k++ {
		if s.Pressed(k) {
			held = append(held, k.String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}

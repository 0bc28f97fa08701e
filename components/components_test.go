package components

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/tanks/geom"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform(1, 2, 3)

	if tr.Translation != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected translation (1,2,3), got %v", tr.Translation)
	}
	if tr.Rotation != geom.Identity {
		t.Errorf("expected identity rotation, got %v", tr.Rotation)
	}
	if tr.Scale != (r3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("expected unit scale, got %v", tr.Scale)
	}
}

func TestLookingAtKeepsTranslation(t *testing.T) {
	tr := NewTransform(15, 0, 5).LookingAt(r3.Vec{}, geom.AxisZ)

	if tr.Translation != (r3.Vec{X: 15, Z: 5}) {
		t.Errorf("LookingAt moved the transform to %v", tr.Translation)
	}

	fwd := geom.Forward(tr.Rotation)
	want := r3.Unit(r3.Vec{X: -15, Z: -5})
	if d := r3.Norm(r3.Sub(fwd, want)); d > 1e-9 {
		t.Errorf("forward = %v, want %v", fwd, want)
	}
}

func TestLookingAtDegenerateKeepsRotation(t *testing.T) {
	tr := NewTransform(0, 0, 0)
	tr.Rotation = geom.RotationZ(30)

	got := tr.LookingAt(r3.Vec{}, geom.AxisZ)
	if got.Rotation != tr.Rotation {
		t.Errorf("expected rotation to be kept when target == eye, got %v", got.Rotation)
	}
}

func TestShadowProjectionPlanes(t *testing.T) {
	light := DirectionalLight{HalfSize: 25}

	if light.Near() != -250 || light.Far() != 250 {
		t.Errorf("expected near/far -250/250, got %v/%v", light.Near(), light.Far())
	}
}

func TestModelExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tank.gltf")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("writing model: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file", path, true},
		{"missing", filepath.Join(dir, "missing.gltf"), false},
		{"directory", dir, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Model{Path: tt.path}).Exists(); got != tt.want {
				t.Errorf("Model{%q}.Exists() = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

package input

import (
	"testing"

	"chosenoffset.com/colony/internal/render"
)

type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.justPressed[k] }

func TestSampleMapsArrowsAndWASD(t *testing.T) {
	tests := []struct {
		name string
		keys []render.Key
		want Directions
	}{
		{"nothing", nil, Directions{}},
		{"arrow up", []render.Key{render.KeyUp}, Directions{Up: true}},
		{"w is up", []render.Key{render.KeyW}, Directions{Up: true}},
		{"s and left", []render.Key{render.KeyS, render.KeyLeft}, Directions{Down: true, Left: true}},
		{"d is right", []render.Key{render.KeyD}, Directions{Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &fakeInput{pressed: map[render.Key]bool{}}
			for _, k := range tt.keys {
				in.pressed[k] = true
			}
			got := Sample(in).Directions
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
			if got.Any() != (len(tt.keys) > 0) {
				t.Errorf("Any() = %v for keys %v", got.Any(), tt.keys)
			}
		})
	}
}

func TestSampleQuitUsesJustPressed(t *testing.T) {
	in := &fakeInput{
		pressed:     map[render.Key]bool{render.KeyEscape: true},
		justPressed: map[render.Key]bool{},
	}
	if Sample(in).Quit {
		t.Error("Expected held Escape without a fresh press to not quit")
	}

	in.justPressed[render.KeyEscape] = true
	in.justPressed[render.KeyF3] = true
	snap := Sample(in)
	if !snap.Quit || !snap.ToggleInfo {
		t.Errorf("Expected quit and toggle, got %+v", snap)
	}
}

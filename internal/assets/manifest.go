// Package assets loads the asset collection that gates the Playing phase:
// the scene layout and the wireframe models with their animation clips.
package assets

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/player"
	"chosenoffset.com/colony/internal/render"
)

// Manifest is the top-level asset file.
type Manifest struct {
	// Models maps a model name to its file, relative to the manifest.
	Models map[string]string `yaml:"models"`

	// PlayerModel names the model used for the controlled character.
	PlayerModel string `yaml:"player_model"`

	// PlayerClips names the player model's clips for each motion.
	PlayerClips ClipNames `yaml:"player_clips"`

	Scene SceneLayout `yaml:"scene"`
}

// ClipNames maps motions to clip names.
type ClipNames struct {
	Idle          string `yaml:"idle"`
	Running       string `yaml:"running"`
	IdleToRunning string `yaml:"idle_to_running"`
}

// Clips converts the names for the player animator.
func (c ClipNames) Clips() player.Clips {
	return player.Clips{Idle: c.Idle, Running: c.Running, IdleToRunning: c.IdleToRunning}
}

// SceneLayout describes the static scene spawned when play starts.
type SceneLayout struct {
	Ground           GroundLayout           `yaml:"ground"`
	PointLight       PointLightLayout       `yaml:"point_light"`
	DirectionalLight DirectionalLightLayout `yaml:"directional_light"`
}

// GroundLayout is the ground plane.
type GroundLayout struct {
	Size  float32    `yaml:"size"`
	Color render.RGB `yaml:"color"`
}

// PointLightLayout is the scene's point light.
type PointLightLayout struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
	Shadows   bool       `yaml:"shadows"`
	Color     render.RGB `yaml:"color"`
}

// DirectionalLightLayout is the scene's sun. It shines from Position
// toward the origin.
type DirectionalLightLayout struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Illuminance float32    `yaml:"illuminance"`
	Color       render.RGB `yaml:"color"`
}

// Model is a wireframe mesh with named animation clips.
type Model struct {
	Name     string       `yaml:"name"`
	Vertices []mgl32.Vec3 `yaml:"vertices"`
	Edges    [][2]int     `yaml:"edges"`
	Clips    []Clip       `yaml:"clips"`
}

// Clip is an animation: a vertical bob of Amplitude units repeating every
// Duration.
type Clip struct {
	Name      string        `yaml:"name"`
	Duration  time.Duration `yaml:"duration"`
	Amplitude float32       `yaml:"amplitude"`
	Loop      bool          `yaml:"loop"`
}

// Clip returns the named clip.
func (m *Model) Clip(name string) (Clip, bool) {
	for _, c := range m.Clips {
		if c.Name == name {
			return c, true
		}
	}
	return Clip{}, false
}

// Validate checks edge indices and clip durations.
func (m *Model) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("model %q has no vertices", m.Name)
	}
	for i, e := range m.Edges {
		for _, v := range e {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("model %q edge %d references vertex %d of %d", m.Name, i, v, len(m.Vertices))
			}
		}
	}
	for _, c := range m.Clips {
		if c.Name == "" {
			return fmt.Errorf("model %q has an unnamed clip", m.Name)
		}
		if c.Duration <= 0 {
			return fmt.Errorf("model %q clip %q has non-positive duration %v", m.Name, c.Name, c.Duration)
		}
	}
	return nil
}

// Collection is the loaded result: everything the Playing phase needs.
type Collection struct {
	Scene       SceneLayout
	Models      map[string]*Model
	PlayerModel *Model
	PlayerClips player.Clips
}

// DefaultManifest returns the built-in scene layout.
func DefaultManifest() Manifest {
	return Manifest{
		PlayerModel: "character",
		PlayerClips: ClipNames{Idle: "idle", Running: "running", IdleToRunning: "idle_to_running"},
		Scene: SceneLayout{
			Ground: GroundLayout{Size: 15, Color: render.RGB{0.3, 0.5, 0.3}},
			PointLight: PointLightLayout{
				Position:  mgl32.Vec3{4, 15, 4},
				Intensity: 1500,
				Shadows:   true,
				Color:     render.RGB{1, 1, 1},
			},
			DirectionalLight: DirectionalLightLayout{
				Position:    mgl32.Vec3{-2, 9999, -2},
				Illuminance: 4000,
				Color:       render.RGB{1, 1, 0.8},
			},
		},
	}
}

// DefaultCharacter is the built-in player model: a unit box standing on
// the ground with a nose marking its forward (-Z) side.
func DefaultCharacter() *Model {
	return &Model{
		Name: "character",
		Vertices: []mgl32.Vec3{
			{-0.3, -0.5, -0.3}, {0.3, -0.5, -0.3}, {0.3, -0.5, 0.3}, {-0.3, -0.5, 0.3},
			{-0.3, 0.5, -0.3}, {0.3, 0.5, -0.3}, {0.3, 0.5, 0.3}, {-0.3, 0.5, 0.3},
			{0, 0.2, -0.6},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			{4, 8}, {5, 8},
		},
		Clips: []Clip{
			{Name: "idle", Duration: 2 * time.Second, Amplitude: 0.02, Loop: true},
			{Name: "running", Duration: 400 * time.Millisecond, Amplitude: 0.12, Loop: true},
			{Name: "idle_to_running", Duration: 500 * time.Millisecond, Amplitude: 0.06},
		},
	}
}

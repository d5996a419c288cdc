package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/colony/internal/logger"
)

// ErrNotReady is returned by Poll while loading is still in progress.
var ErrNotReady = errors.New("assets: not ready")

// Loader reads the asset collection in the background. Start it once and
// poll it from the frame loop; Poll never blocks.
type Loader struct {
	manifestPath string
	log          logger.Logger

	once   sync.Once
	done   chan struct{}
	result *Collection
	err    error
}

// NewLoader creates a loader for the manifest at path.
func NewLoader(path string, log logger.Logger) *Loader {
	return &Loader{
		manifestPath: path,
		log:          log.With(logger.Field{Key: "component", Value: "assets"}),
		done:         make(chan struct{}),
	}
}

// Start begins loading. Subsequent calls are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go func() {
			defer close(l.done)
			l.result, l.err = Load(ctx, l.manifestPath, l.log)
		}()
	})
}

// Poll returns the collection once loading has finished, or ErrNotReady.
func (l *Loader) Poll() (*Collection, error) {
	select {
	case <-l.done:
		return l.result, l.err
	default:
		return nil, ErrNotReady
	}
}

// Wait blocks until loading finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Collection, error) {
	select {
	case <-l.done:
		return l.result, l.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Load reads the manifest at path and every model it lists. A missing
// manifest yields the built-in collection; malformed files and missing
// model files are errors.
func Load(ctx context.Context, path string, log logger.Logger) (*Collection, error) {
	manifest, err := readManifest(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("Asset manifest not found, using built-in collection", logger.Field{Key: "path", Value: path})
		return builtinCollection(), nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(manifest.Models))
	for name := range manifest.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	models := make([]*Model, len(names))
	base := filepath.Dir(path)

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		file := filepath.Join(base, manifest.Models[name])
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := readModel(file)
			if err != nil {
				return fmt.Errorf("model %q: %w", name, err)
			}
			if m.Name == "" {
				m.Name = name
			}
			models[i] = m
			log.Debug("Loaded model",
				logger.Field{Key: "model", Value: name},
				logger.Field{Key: "vertices", Value: len(m.Vertices)},
				logger.Field{Key: "clips", Value: len(m.Clips)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	coll := &Collection{
		Scene:       manifest.Scene,
		Models:      make(map[string]*Model, len(names)),
		PlayerClips: manifest.PlayerClips.Clips(),
	}
	for i, name := range names {
		coll.Models[name] = models[i]
	}

	if err := coll.bindPlayer(manifest.PlayerModel); err != nil {
		return nil, err
	}

	log.Info("Asset collection ready",
		logger.Field{Key: "models", Value: len(coll.Models)},
		logger.Field{Key: "player_model", Value: manifest.PlayerModel})
	return coll, nil
}

// bindPlayer resolves the player model and checks it carries every clip
// the animator will ask for.
func (c *Collection) bindPlayer(name string) error {
	m, ok := c.Models[name]
	if !ok {
		return fmt.Errorf("player model %q is not listed in models", name)
	}
	for _, clip := range []string{c.PlayerClips.Idle, c.PlayerClips.Running, c.PlayerClips.IdleToRunning} {
		if _, ok := m.Clip(clip); !ok {
			return fmt.Errorf("player model %q has no clip %q", name, clip)
		}
	}
	c.PlayerModel = m
	return nil
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	manifest := DefaultManifest()
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest %s: %w", path, err)
	}
	return &manifest, nil
}

func readModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func builtinCollection() *Collection {
	manifest := DefaultManifest()
	character := DefaultCharacter()
	return &Collection{
		Scene:       manifest.Scene,
		Models:      map[string]*Model{character.Name: character},
		PlayerModel: character,
		PlayerClips: manifest.PlayerClips.Clips(),
	}
}

package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"garden-assets/core/assets"
	"garden-assets/core/logger"
	"garden-assets/core/pool"
	"garden-assets/core/resource"
	"garden-assets/core/scene"

	"go.uber.org/zap"
)

// ErrUnknownTemplate is returned when releasing a template that is not held.
var ErrUnknownTemplate = errors.New("template not loaded")

// ModelLoader loads a model, substituting a placeholder when allowed.
type ModelLoader interface {
	LoadWithFallback(ctx context.Context, name string, onProgress assets.ProgressFunc, opts ...assets.LoadOption) (*scene.Node, error)
}

// Plant is one placed model in a layout.
type Plant struct {
	Model    string     `json:"model"`
	Kind     string     `json:"kind"`
	Position scene.Vec3 `json:"position"`
	Scale    float32    `json:"scale"`
	Fallback bool       `json:"fallback"`
}

// Layout is the result of growing the garden.
type Layout struct {
	Activity int     `json:"activity"`
	Plants   []Plant `json:"plants"`
	Paths    []Plant `json:"paths"`
	Nodes    int     `json:"nodes"`
	// BasicVersion marks a layout capped for the basic subscription level.
	BasicVersion bool `json:"basic_version,omitempty"`
}

// Stats describes the garden's held resources.
type Stats struct {
	Templates []string `json:"templates"`
	Placed    int      `json:"placed"`
	IdleNodes int      `json:"idle_nodes"`
}

// Service composes garden layouts from shared model templates.
type Service struct {
	cfg       Config
	logger    *zap.Logger
	templates *resource.Manager[*scene.Node]
	nodes     *pool.Pool[*scene.Node]

	mu     sync.Mutex
	root   *scene.Node
	placed []*scene.Node
}

// NewService creates a garden service. Templates are loaded through loader
// on first use and kept until released.
func NewService(cfg Config, loader ModelLoader, log *zap.Logger) *Service {
	log = logger.OrNop(log)
	s := &Service{
		cfg:    cfg,
		logger: log,
		root:   scene.NewGroup("garden"),
	}
	s.templates = resource.NewManager(func(name string) (*scene.Node, error) {
		return loader.LoadWithFallback(context.Background(), name, nil)
	}, func(n *scene.Node) {
		log.Debug("Released garden template", zap.String("model", n.Name))
	})
	s.nodes = scene.NewNodePool(func() *scene.Node {
		return scene.NewGroup("")
	}, pool.WithMaxSize(cfg.NodePoolSize))
	return s
}

// Grow lays out the garden for the given prayer activity. Instances placed by
// the previous layout are returned to the node pool first.
func (s *Service) Grow(ctx context.Context, activity int) (*Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := s.cfg.PlantCount(activity)
	rows := (count + 1) / 2

	// Templates load before the layout lock so a slow model does not hold up Stats.
	templates, err := s.templatesFor(count, rows)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.releasePlaced()

	layout := &Layout{
		Activity: max(activity, 0),
		Plants:   make([]Plant, 0, count),
		Paths:    make([]Plant, 0, rows),
	}

	spacing := s.cfg.Spacing
	for row := 0; row < rows; row++ {
		pos := scene.NewVec3(0, 0, float32(row)*spacing)
		layout.Paths = append(layout.Paths, s.place(templates, s.cfg.PathModel, "path", pos, 1))
	}

	scale := growthScale(activity)
	for i := 0; i < count; i++ {
		side := float32(-1)
		if i%2 == 1 {
			side = 1
		}
		pos := scene.NewVec3(side*spacing, 0, float32(i/2)*spacing)

		model, kind := s.cfg.FlowerModel, "flower"
		if i%3 == 2 {
			model, kind = s.cfg.TreeModel, "tree"
		}
		layout.Plants = append(layout.Plants, s.place(templates, model, kind, pos, scale))
	}

	layout.Nodes = s.root.Count()
	s.logger.Debug("Garden grown",
		zap.Int("activity", activity),
		zap.Int("plants", len(layout.Plants)),
		zap.Int("nodes", layout.Nodes),
	)
	return layout, nil
}

// templatesFor fetches the templates a layout of count plants and rows path
// segments uses, keyed by model name.
func (s *Service) templatesFor(count, rows int) (map[string]*scene.Node, error) {
	var names []string
	if rows > 0 {
		names = append(names, s.cfg.PathModel)
	}
	if count > 0 {
		names = append(names, s.cfg.FlowerModel)
	}
	if count > 2 {
		names = append(names, s.cfg.TreeModel)
	}

	templates := make(map[string]*scene.Node, len(names))
	for _, name := range names {
		template, err := s.templates.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		templates[name] = template
	}
	return templates, nil
}

// place instances a template at pos and attaches it to the garden root.
// Must be called with s.mu held.
func (s *Service) place(templates map[string]*scene.Node, model, kind string, pos scene.Vec3, scale float32) Plant {
	template := templates[model]

	inst := s.nodes.Get()
	inst.Name = model
	inst.Transform.Position = pos
	inst.Transform.Scale = scene.NewVec3One().MulScalar(scale)
	inst.UserData["kind"] = kind
	inst.Children = append(inst.Children[:0], template)

	s.placed = append(s.placed, inst)
	s.root.Add(inst)

	return Plant{
		Model:    model,
		Kind:     kind,
		Position: pos,
		Scale:    scale,
		Fallback: template.IsFallback(),
	}
}

// releasePlaced returns the previous layout's instances to the pool.
func (s *Service) releasePlaced() {
	for _, inst := range s.placed {
		s.nodes.Release(inst)
	}
	s.placed = s.placed[:0]
	s.root.Children = nil
}

// Warm loads the garden's templates ahead of the first layout.
func (s *Service) Warm() error {
	return s.templates.Preload([]string{s.cfg.PathModel, s.cfg.FlowerModel, s.cfg.TreeModel})
}

// ReleaseTemplate drops a held template so the next layout reloads it.
func (s *Service) ReleaseTemplate(name string) error {
	if !s.templates.Has(name) {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	s.templates.Release(name)
	return nil
}

// Stats reports held templates and pooled nodes.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Templates: s.templates.Keys(),
		Placed:    len(s.placed),
		IdleNodes: s.nodes.Len(),
	}
}

// growthScale grows plants with activity, up to double size.
func growthScale(activity int) float32 {
	const step = 0.1
	if activity <= 0 {
		return 1
	}
	return min(1+float32(activity)*step, 2)
}

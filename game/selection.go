package game

import (
	"cmp"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tanks/components"
	"github.com/pthm-cable/tanks/inspector"
)

// componentLookup returns a pointer to one component type of an entity.
type componentLookup func(ecs.Entity) (any, bool)

func lookup[T any](world *ecs.World) componentLookup {
	mapper := ecs.NewMap[T](world)
	return func(e ecs.Entity) (any, bool) {
		if !mapper.Has(e) {
			return nil, false
		}
		return mapper.Get(e), true
	}
}

// componentLookups lists every component the inspector can show, in
// display order.
func componentLookups(world *ecs.World) []componentLookup {
	return []componentLookup{
		lookup[components.Transform](world),
		lookup[components.TankControllable](world),
		lookup[components.Camera](world),
		lookup[components.CameraTrail](world),
		lookup[components.DirectionalLight](world),
		lookup[components.Marker](world),
		lookup[components.Ground](world),
		lookup[components.Chunk](world),
		lookup[components.Model](world),
	}
}

// entries lists named entities in spawn order.
func (g *Game) entries() []inspector.Entry {
	var out []inspector.Entry
	query := g.names.Query()
	for query.Next() {
		name := query.Get()
		out = append(out, inspector.Entry{Entity: query.Entity(), Name: name.Value})
	}
	slices.SortFunc(out, func(a, b inspector.Entry) int {
		return cmp.Compare(a.Entity.ID(), b.Entity.ID())
	})
	return out
}

// componentsOf returns the inspectable components of e, or nil once the
// entity is gone.
func (g *Game) componentsOf(e ecs.Entity) []any {
	if !g.world.Alive(e) {
		return nil
	}
	comps := make([]any, 0, len(g.lookups))
	for _, get := range g.lookups {
		if c, ok := get(e); ok {
			comps = append(comps, c)
		}
	}
	return comps
}

package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

var (
	// ErrUnknownPrefab is returned when spawning a name the catalog lacks.
	ErrUnknownPrefab = errors.New("unknown prefab")
	// ErrSpawnBlocked is returned when the target cell cannot take a new entity.
	ErrSpawnBlocked = errors.New("spawn cell blocked")
)

// Prefab is a named, fully decoded entity template.
type Prefab struct {
	Name       string
	components []inserter
}

// Catalog holds every prefab of a content pack. Prefabs are decoded once at
// load time, so spawning never fails on data.
type Catalog struct {
	prefabs map[string]*Prefab
	order   []string
}

// LoadCatalog reads a yaml content file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a document of the form
//
//	Goblin:
//	  Health: 3
//	  Actor:
//	    abilities: [{kind: Melee, damage: 1}]
//
// Unknown component names and malformed data are errors.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	c := &Catalog{prefabs: make(map[string]*Prefab)}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of prefabs", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if _, dup := c.prefabs[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate prefab %q", root.Content[i].Line, name)
		}
		components, err := decodeComponents(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("prefab %q: %w", name, err)
		}
		c.prefabs[name] = &Prefab{Name: name, components: components}
		c.order = append(c.order, name)
	}
	return c, nil
}

// Has reports whether the catalog defines name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.prefabs[name]
	return ok
}

// Names lists prefabs in document order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Spawn creates an entity from the named prefab at pos. It does not check
// the cell; see SpawnWithPosition.
func (c *Catalog) Spawn(w *ecs.World, name string, pos domain.Vec2) (ecs.EntityID, error) {
	prefab, ok := c.prefabs[name]
	if !ok {
		return ecs.NilEntityID, fmt.Errorf("%q: %w", name, ErrUnknownPrefab)
	}

	id := w.Spawn()
	_ = ecs.Insert(w, id, domain.Name{Value: name})
	_ = ecs.Insert(w, id, domain.Position{Vec2: pos})
	for _, ins := range prefab.components {
		if err := ins(w, id); err != nil {
			w.Despawn(id)
			return ecs.NilEntityID, err
		}
	}
	return id, nil
}

// SpawnWithPosition spawns name at pos unless the cell holds an Obstacle or
// a Health-bearing entity. With a catalog installed as a world resource the
// prefab's components are attached; without one the entity only gets Name
// and Position. All checks run before the first write.
func SpawnWithPosition(w *ecs.World, name string, pos domain.Vec2) (ecs.EntityID, error) {
	for _, other := range domain.EntitiesAt(w, pos) {
		if ecs.Has[domain.Obstacle](w, other) || ecs.Has[domain.Health](w, other) {
			return ecs.NilEntityID, fmt.Errorf("%s at %v: %w", name, pos, ErrSpawnBlocked)
		}
	}

	catalog, ok := ecs.Resource[*Catalog](w)
	if ok && catalog != nil {
		return catalog.Spawn(w, name, pos)
	}

	id := w.Spawn()
	_ = ecs.Insert(w, id, domain.Name{Value: name})
	_ = ecs.Insert(w, id, domain.Position{Vec2: pos})
	return id, nil
}

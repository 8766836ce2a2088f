package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// inserter attaches one decoded component to an entity.
type inserter func(w *ecs.World, id ecs.EntityID) error

type decoder func(node *yaml.Node) (inserter, error)

type cloner[T any] interface {
	Clone() T
}

// dataComponents maps yaml component names to their decoders. Anything not
// listed here is a content error.
var dataComponents = map[string]decoder{
	"Actor":       decodeComponent[domain.Actor],
	"Fixture":     decodeComponent[domain.Fixture],
	"Health":      decodeComponent[domain.Health],
	"Item":        decodeComponent[domain.Item],
	"Obstacle":    decodeComponent[domain.Obstacle],
	"Tile":        decodeComponent[domain.Tile],
	"ViewBlocker": decodeComponent[domain.ViewBlocker],
	"Vortex":      decodeComponent[domain.Vortex],
}

func decodeComponent[T any](node *yaml.Node) (inserter, error) {
	var c T
	if !isNull(node) {
		if err := node.Decode(&c); err != nil {
			return nil, err
		}
	}
	return func(w *ecs.World, id ecs.EntityID) error {
		v := c
		if cl, ok := any(c).(cloner[T]); ok {
			v = cl.Clone()
		}
		return ecs.Insert(w, id, v)
	}, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

// decodeComponents turns a `ComponentName: data` mapping into inserters, in
// document order.
func decodeComponents(node *yaml.Node) ([]inserter, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of components", node.Line)
	}

	out := make([]inserter, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		dec, ok := dataComponents[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown component %q", node.Content[i].Line, name)
		}
		ins, err := dec(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse %s: %w", node.Content[i].Line, name, err)
		}
		out = append(out, ins)
	}
	return out, nil
}

// InsertDataComponents decodes a component mapping and attaches every
// component to id. Nothing is inserted unless the whole mapping decodes.
func InsertDataComponents(w *ecs.World, id ecs.EntityID, node *yaml.Node) error {
	inserters, err := decodeComponents(node)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	for _, ins := range inserters {
		if err := ins(w, id); err != nil {
			return fmt.Errorf("content: %w", err)
		}
	}
	return nil
}

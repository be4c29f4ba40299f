package numeric

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vectors appear in config files as flow sequences, e.g. `size: [640, 480]`.

func decodeComponents[K Scalar](node *yaml.Node, n int) ([]K, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence of %d numbers", node.Line, n)
	}
	var comps []K
	if err := node.Decode(&comps); err != nil {
		return nil, err
	}
	if len(comps) != n {
		return nil, fmt.Errorf("line %d: expected %d components, got %d", node.Line, n, len(comps))
	}
	return comps, nil
}

func encodeComponents[K Scalar](comps ...K) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(comps); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

func (v Vec2[K]) MarshalYAML() (interface{}, error) { return encodeComponents(v.X, v.Y) }

func (v *Vec2[K]) UnmarshalYAML(node *yaml.Node) error {
	comps, err := decodeComponents[K](node, 2)
	if err != nil {
		return err
	}
	*v = Vec2[K]{comps[0], comps[1]}
	return nil
}

func (v Vec4[K]) MarshalYAML() (interface{}, error) { return encodeComponents(v.X, v.Y, v.Z, v.W) }

func (v *Vec4[K]) UnmarshalYAML(node *yaml.Node) error {
	comps, err := decodeComponents[K](node, 4)
	if err != nil {
		return err
	}
	*v = Vec4[K]{comps[0], comps[1], comps[2], comps[3]}
	return nil
}

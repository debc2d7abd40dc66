// Package scene loads declarative node trees from YAML files and converts
// them into VNode trees the reconciler can mount.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/errors"
)

// Scene is the top-level structure of a scene file.
type Scene struct {
	// Name labels the scene; informational only.
	Name string `yaml:"name,omitempty"`
	// Root is the node tree to render.
	Root Node `yaml:"root"`
}

// Node describes one position of the declarative tree. A node is either a
// tagged element (Tag set) or a text node (Text set, Tag empty).
type Node struct {
	Tag      string            `yaml:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Key      string            `yaml:"key,omitempty"`
	Class    string            `yaml:"class,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Style    map[string]string `yaml:"style,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.FernError{
			Op:   "scene.Load",
			Kind: errors.KindScene,
			Err:  err,
		}
	}
	return Parse(data)
}

// Parse parses scene YAML.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &errors.FernError{
			Op:   "scene.Parse",
			Kind: errors.KindScene,
			Err:  err,
		}
	}
	if err := sc.Root.validate("root"); err != nil {
		return nil, &errors.FernError{
			Op:   "scene.Parse",
			Kind: errors.KindScene,
			Err:  err,
		}
	}
	return &sc, nil
}

func (n *Node) validate(at string) error {
	if n.Tag == "" && n.Text == "" {
		return fmt.Errorf("%s: node needs a tag or text", at)
	}
	if n.Tag == "" && len(n.Children) > 0 {
		return fmt.Errorf("%s: text node cannot have children", at)
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}

// Build converts the scene into a fresh VNode tree. Each call returns a new
// tree, matching the contract that VNodes belong to the render pass that
// produced them.
func (s *Scene) Build() *core.VNode {
	return s.Root.build()
}

func (n *Node) build() *core.VNode {
	if n.Tag == "" {
		return core.Text(n.Text)
	}

	props := core.Props{}
	if n.Key != "" {
		props["key"] = n.Key
	}
	if n.Class != "" {
		props["class"] = n.Class
	}
	for name, value := range n.Attrs {
		props[name] = value
	}
	if len(n.Style) > 0 {
		style := make(map[string]string, len(n.Style))
		for k, v := range n.Style {
			style[k] = v
		}
		props["style"] = style
	}

	children := make([]any, 0, len(n.Children)+1)
	if n.Text != "" {
		children = append(children, n.Text)
	}
	for i := range n.Children {
		children = append(children, n.Children[i].build())
	}
	return core.H(n.Tag, props, children...)
}

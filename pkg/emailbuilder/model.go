package emailbuilder

import (
	"encoding/json"
	"fmt"
)

// ComponentType represents the available template component types
type ComponentType string

const (
	ComponentText    ComponentType = "text"
	ComponentHeading ComponentType = "heading"
	ComponentButton  ComponentType = "button"
	ComponentImage   ComponentType = "image"
	ComponentSocial  ComponentType = "social"
	ComponentHeader  ComponentType = "header"
	ComponentFooter  ComponentType = "footer"
)

// AllComponentTypes lists every known component type in palette order.
var AllComponentTypes = []ComponentType{
	ComponentHeader,
	ComponentHeading,
	ComponentText,
	ComponentButton,
	ComponentImage,
	ComponentSocial,
	ComponentFooter,
}

// IsValidComponentType checks whether a string tag names a known component type
func IsValidComponentType(t ComponentType) bool {
	switch t {
	case ComponentText, ComponentHeading, ComponentButton, ComponentImage,
		ComponentSocial, ComponentHeader, ComponentFooter:
		return true
	default:
		return false
	}
}

// Component is one placed, editable content block in a template.
// Identity is the ID; lookup is always by ID.
type Component struct {
	ID         string                 `json:"id"`
	Type       ComponentType          `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Styles     map[string]string      `json:"styles,omitempty"`
	// HTML caches the source markup a component was parsed from.
	// It is preserved for round-trip but never used for rendering.
	HTML string `json:"html,omitempty"`
}

// SocialLink is one entry of a social component's socialLinks property.
// Network is a known network name or "custom"; custom entries may carry
// their own icon source.
type SocialLink struct {
	Network string `json:"type"`
	URL     string `json:"url"`
	IconSrc string `json:"iconSrc,omitempty"`
}

// Node is one element of a Template's component sequence: either a single
// top-level component (header, footer) or a content section grouping of
// inline components produced by the parser. Groups are never reconstructed
// after an edit; the editor always flattens.
type Node struct {
	Component *Component
	Group     []*Component
}

// IsGroup reports whether the node is a content section grouping
func (n *Node) IsGroup() bool {
	return n != nil && n.Component == nil
}

// MarshalJSON serializes a Node as either a component object or a JSON array
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Component != nil {
		return json.Marshal(n.Component)
	}
	if n.Group == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(n.Group)
}

// UnmarshalJSON deserializes either shape back into a Node
func (n *Node) UnmarshalJSON(data []byte) error {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			n.Component = nil
			return json.Unmarshal(data, &n.Group)
		default:
			n.Group = nil
			n.Component = &Component{}
			return json.Unmarshal(data, n.Component)
		}
	}
	return fmt.Errorf("empty template node")
}

// Metadata holds template-level presentation settings
type Metadata struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Name            string `json:"name,omitempty"`
	Width           string `json:"width,omitempty"`
}

// Template is the aggregate root of the editing model
type Template struct {
	Components   []*Node                `json:"components"`
	GlobalStyles map[string]interface{} `json:"globalStyles"`
	Metadata     Metadata               `json:"metadata"`
}

// NewTemplate returns an empty template with default metadata
func NewTemplate() *Template {
	return &Template{
		Components:   []*Node{},
		GlobalStyles: map[string]interface{}{},
		Metadata: Metadata{
			Width:           "600px",
			BackgroundColor: "#fafafa",
		},
	}
}

// Flatten expands any content section groupings and returns the canonical
// ordered list of all components. It is recomputed from current state on
// every call; applying it to an already-flat list yields the same list.
func (t *Template) Flatten() []*Component {
	if t == nil {
		return nil
	}
	flat := make([]*Component, 0, len(t.Components))
	for _, node := range t.Components {
		if node == nil {
			continue
		}
		if node.Component != nil {
			flat = append(flat, node.Component)
			continue
		}
		flat = append(flat, node.Group...)
	}
	return flat
}

// SetFlat replaces the component sequence with a flat list, one node per
// component. Nested grouping is not reconstructed once an edit flattens it.
func (t *Template) SetFlat(components []*Component) {
	nodes := make([]*Node, 0, len(components))
	for _, c := range components {
		if c == nil {
			continue
		}
		nodes = append(nodes, &Node{Component: c})
	}
	t.Components = nodes
}

// FindComponent looks up a component by ID across groups
func (t *Template) FindComponent(id string) *Component {
	for _, c := range t.Flatten() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Clone returns a deep, independent copy of the template. History snapshots
// rely on this so canvas mutation never retroactively corrupts history.
func (t *Template) Clone() (*Template, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot clone nil template")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}
	var clone Template
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template clone: %w", err)
	}
	return &clone, nil
}

// StringProperty reads a string-valued property, falling back to def when
// the property is missing, empty or not a string.
func (c *Component) StringProperty(name, def string) string {
	if c == nil || c.Properties == nil {
		return def
	}
	v, ok := c.Properties[name]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// SocialLinksOf normalizes a social component's socialLinks value. It
// accepts typed slices, decoded-JSON slices, and the legacy per-network URL
// fields older templates carried instead of a structured list.
func SocialLinksOf(c *Component) []SocialLink {
	if c == nil || c.Properties == nil {
		return nil
	}

	switch v := c.Properties["socialLinks"].(type) {
	case []SocialLink:
		out := make([]SocialLink, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]SocialLink, 0, len(v))
		for _, raw := range v {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			link := SocialLink{}
			if s, ok := m["type"].(string); ok {
				link.Network = s
			}
			if s, ok := m["url"].(string); ok {
				link.URL = s
			}
			if s, ok := m["iconSrc"].(string); ok {
				link.IconSrc = s
			}
			if link.URL != "" {
				out = append(out, link)
			}
		}
		return out
	}

	// Legacy shape: one fixed URL property per network.
	legacy := []string{
		"facebook", "instagram", "whatsapp", "twitter", "linkedin",
		"youtube", "reddit", "pinterest", "tiktok", "telegram",
	}
	var out []SocialLink
	for _, network := range legacy {
		url := c.StringProperty(network+"Url", "")
		if url == "" {
			continue
		}
		out = append(out, SocialLink{Network: network, URL: url})
	}
	return out
}

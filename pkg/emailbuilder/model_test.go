package emailbuilder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeComponent(id string, t ComponentType) *Component {
	return &Component{
		ID:         id,
		Type:       t,
		Properties: DefaultProperties(t),
	}
}

func TestNodeJSONShape(t *testing.T) {
	t.Run("single component marshals as object", func(t *testing.T) {
		node := &Node{Component: makeComponent("c1", ComponentText)}
		data, err := json.Marshal(node)
		require.NoError(t, err)
		assert.Equal(t, byte('{'), data[0])

		var back Node
		require.NoError(t, json.Unmarshal(data, &back))
		require.NotNil(t, back.Component)
		assert.Nil(t, back.Group)
		assert.Equal(t, "c1", back.Component.ID)
	})

	t.Run("group marshals as array", func(t *testing.T) {
		node := &Node{Group: []*Component{
			makeComponent("c1", ComponentHeading),
			makeComponent("c2", ComponentText),
		}}
		data, err := json.Marshal(node)
		require.NoError(t, err)
		assert.Equal(t, byte('['), data[0])

		var back Node
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Nil(t, back.Component)
		require.Len(t, back.Group, 2)
		assert.Equal(t, ComponentHeading, back.Group[0].Type)
	})
}

func TestTemplateFlatten(t *testing.T) {
	tmpl := NewTemplate()
	tmpl.Components = []*Node{
		{Component: makeComponent("a", ComponentHeader)},
		{Group: []*Component{makeComponent("b", ComponentHeading), makeComponent("c", ComponentText)}},
		{Component: makeComponent("d", ComponentFooter)},
	}

	flat := tmpl.Flatten()
	require.Len(t, flat, 4)

	ids := make([]string, len(flat))
	for i, c := range flat {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)

	t.Run("flatten is stable across calls", func(t *testing.T) {
		again := tmpl.Flatten()
		require.Len(t, again, 4)
		for i := range flat {
			assert.Same(t, flat[i], again[i])
		}
	})

	t.Run("set flat then flatten round-trips", func(t *testing.T) {
		tmpl.SetFlat(flat)
		roundTripped := tmpl.Flatten()
		require.Len(t, roundTripped, 4)
		for i := range flat {
			assert.Equal(t, flat[i].ID, roundTripped[i].ID)
		}
	})

	t.Run("nil template flattens to empty", func(t *testing.T) {
		var nilTmpl *Template
		assert.Empty(t, nilTmpl.Flatten())
	})
}

func TestTemplateClone(t *testing.T) {
	tmpl := NewTemplate()
	tmpl.Components = []*Node{
		{Component: makeComponent("a", ComponentText)},
	}

	clone, err := tmpl.Clone()
	require.NoError(t, err)
	require.Len(t, clone.Flatten(), 1)

	// Mutating the clone must not reach back into the original.
	clone.Flatten()[0].Properties["content"] = "changed"
	assert.Equal(t, "Type your text here...", tmpl.Flatten()[0].StringProperty("content", ""))
}

func TestFindComponent(t *testing.T) {
	tmpl := NewTemplate()
	tmpl.Components = []*Node{
		{Group: []*Component{makeComponent("x", ComponentButton)}},
	}

	assert.NotNil(t, tmpl.FindComponent("x"))
	assert.Nil(t, tmpl.FindComponent("missing"))

	var nilTmpl *Template
	assert.Nil(t, nilTmpl.FindComponent("x"))
}

func TestSocialLinksOf(t *testing.T) {
	t.Run("typed slice", func(t *testing.T) {
		c := makeComponent("s", ComponentSocial)
		links := SocialLinksOf(c)
		require.Len(t, links, 4)
		assert.Equal(t, "facebook", links[0].Network)
	})

	t.Run("decoded JSON maps", func(t *testing.T) {
		c := &Component{
			ID:   "s",
			Type: ComponentSocial,
			Properties: map[string]interface{}{
				"socialLinks": []interface{}{
					map[string]interface{}{"type": "linkedin", "url": "https://linkedin.com/company/acme"},
				},
			},
		}
		links := SocialLinksOf(c)
		require.Len(t, links, 1)
		assert.Equal(t, "linkedin", links[0].Network)
		assert.Equal(t, "https://linkedin.com/company/acme", links[0].URL)
	})

	t.Run("legacy per-network properties", func(t *testing.T) {
		c := &Component{
			ID:   "s",
			Type: ComponentSocial,
			Properties: map[string]interface{}{
				"facebookUrl": "https://facebook.com/acme",
				"twitterUrl":  "https://twitter.com/acme",
			},
		}
		links := SocialLinksOf(c)
		require.Len(t, links, 2)
	})
}

func TestDefaultProperties(t *testing.T) {
	t.Run("button defaults", func(t *testing.T) {
		props := DefaultProperties(ComponentButton)
		require.NotNil(t, props)
		assert.Equal(t, "Click Here", props["text"])
		assert.Equal(t, "https://", props["url"])
		assert.Equal(t, "#00ffd0", props["backgroundColor"])
		assert.Equal(t, "#000", props["textColor"])
		assert.Equal(t, "6px", props["borderRadius"])
		assert.Equal(t, "10px 30px", props["padding"])
		assert.Equal(t, "16px", props["fontSize"])
		assert.Equal(t, "center", props["align"])
	})

	t.Run("unknown type returns nil", func(t *testing.T) {
		assert.Nil(t, DefaultProperties(ComponentType("marquee")))
	})

	t.Run("social defaults are independent copies", func(t *testing.T) {
		first := SocialLinksOf(&Component{Type: ComponentSocial, Properties: DefaultProperties(ComponentSocial)})
		first[0].URL = "mutated"
		second := SocialLinksOf(&Component{Type: ComponentSocial, Properties: DefaultProperties(ComponentSocial)})
		assert.Equal(t, "https://facebook.com", second[0].URL)
	})
}

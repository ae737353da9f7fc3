package emailbuilder

import "fmt"

// BlankTemplate returns an empty template ready for editing
func BlankTemplate() *Template {
	return NewTemplate()
}

// StarterTemplate returns the pre-built welcome layout offered when a user
// starts from scratch: header, heading, body text, call-to-action button,
// social strip and footer.
func StarterTemplate() *Template {
	t := NewTemplate()

	header := starterComponent(1, ComponentHeader, nil)
	heading := starterComponent(2, ComponentHeading, map[string]interface{}{
		"content": "Welcome to our newsletter",
	})
	body := starterComponent(3, ComponentText, map[string]interface{}{
		"content": "Thanks for joining us. Every month we share product news, tips and stories from the community. You can change or remove any block on this page to make the template your own.",
	})
	button := starterComponent(4, ComponentButton, map[string]interface{}{
		"text": "Read More",
	})
	social := starterComponent(5, ComponentSocial, nil)
	footer := starterComponent(6, ComponentFooter, nil)

	t.Components = []*Node{
		{Component: header},
		{Group: []*Component{heading, body, button}},
		{Group: []*Component{social}},
		{Component: footer},
	}
	return t
}

// starterComponent builds a component from its type defaults, with optional
// property overrides. Starter IDs are deterministic; session-created
// components get random IDs instead.
func starterComponent(n int, t ComponentType, overrides map[string]interface{}) *Component {
	props := DefaultProperties(t)
	for k, v := range overrides {
		props[k] = v
	}
	return &Component{
		ID:         fmt.Sprintf("starter-%d", n),
		Type:       t,
		Properties: props,
	}
}

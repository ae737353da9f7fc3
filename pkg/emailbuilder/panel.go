package emailbuilder

import (
	"fmt"
	"time"
)

// Control is one concrete editing widget of the properties panel, bound to
// a specific property of the selected component.
type Control struct {
	Property   string             `json:"property"`
	Descriptor PropertyDescriptor `json:"descriptor"`
	Value      interface{}        `json:"value"`
}

// Controls builds the panel control list for a component: the editable
// properties of its type, in declared order, each paired with its current
// value. Properties lacking a descriptor are skipped rather than rendered
// with a guessed widget.
func Controls(c *Component) []Control {
	if c == nil {
		return nil
	}
	def, ok := Definition(c.Type)
	if !ok {
		return nil
	}
	var controls []Control
	for _, name := range def.EditableProps {
		desc, ok := Descriptor(name)
		if !ok {
			continue
		}
		controls = append(controls, Control{
			Property:   name,
			Descriptor: desc,
			Value:      c.Properties[name],
		})
	}
	return controls
}

// CommitMode says when a property edit should land in undo history
type CommitMode int

const (
	// CommitDebounced batches keystroke-grade edits into one history entry
	CommitDebounced CommitMode = iota
	// CommitImmediate records the edit as its own history entry right away
	CommitImmediate
)

// CommitPolicy maps a control kind to its history behavior. Typing-grade
// inputs debounce; everything that lands as a single settled value (a
// picked color, a released slider, a choice) commits at once.
func CommitPolicy(kind ControlKind) CommitMode {
	switch kind {
	case ControlText, ControlURL, ControlTextarea:
		return CommitDebounced
	default:
		return CommitImmediate
	}
}

// PropertiesPanel drives property edits against a session, enforcing the
// commit policy. It tracks the selected component through the session's
// selection callback.
type PropertiesPanel struct {
	session  *EditorSession
	debounce *Debouncer
	selected *Component
}

// NewPropertiesPanel binds a panel to a session. Binding replaces the
// session's selection listener.
func NewPropertiesPanel(session *EditorSession) *PropertiesPanel {
	p := &PropertiesPanel{
		session:  session,
		debounce: NewDebouncer(500 * time.Millisecond),
	}
	session.SetSelectionListener(p.onSelect)
	return p
}

func (p *PropertiesPanel) onSelect(c *Component) {
	// A selection change ends any pending batch for the previous component.
	p.debounce.Flush()
	p.selected = c
}

// Selected returns the component the panel is currently editing, nil when
// nothing is selected.
func (p *PropertiesPanel) Selected() *Component {
	return p.selected
}

// Controls returns the widgets for the current selection
func (p *PropertiesPanel) Controls() []Control {
	return Controls(p.selected)
}

// SetProperty applies one edit to the selected component and schedules the
// history commit according to the property's control kind.
func (p *PropertiesPanel) SetProperty(name string, value interface{}) error {
	if p.selected == nil {
		return fmt.Errorf("no component selected")
	}
	desc, ok := Descriptor(name)
	if !ok {
		return fmt.Errorf("unknown property %q", name)
	}

	p.session.UpdateProperty(p.selected.ID, name, value)

	switch CommitPolicy(desc.Kind) {
	case CommitImmediate:
		p.debounce.Cancel()
		p.session.CommitHistory()
	default:
		p.debounce.Trigger(func() { p.session.CommitHistory() })
	}
	return nil
}

// Flush forces any pending debounced commit, e.g. before export or send
func (p *PropertiesPanel) Flush() {
	p.debounce.Flush()
}

// AddSocialLink appends a link for a known network to the selected social
// component.
func (p *PropertiesPanel) AddSocialLink(network string) error {
	return p.mutateSocialLinks(func(links []SocialLink) ([]SocialLink, error) {
		known := false
		for _, n := range KnownSocialNetworks() {
			if n == network {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown social network %q", network)
		}
		return append(links, SocialLink{Network: network, URL: DefaultSocialURL(network)}), nil
	})
}

// AddCustomSocialLink appends a link with a caller-provided icon
func (p *PropertiesPanel) AddCustomSocialLink(url, iconSrc string) error {
	return p.mutateSocialLinks(func(links []SocialLink) ([]SocialLink, error) {
		return append(links, SocialLink{Network: "custom", URL: url, IconSrc: iconSrc}), nil
	})
}

// UpdateSocialLink replaces the URL of the link at index
func (p *PropertiesPanel) UpdateSocialLink(index int, url string) error {
	return p.mutateSocialLinks(func(links []SocialLink) ([]SocialLink, error) {
		if index < 0 || index >= len(links) {
			return nil, fmt.Errorf("social link index %d out of range", index)
		}
		links[index].URL = url
		return links, nil
	})
}

// RemoveSocialLink deletes the link at index
func (p *PropertiesPanel) RemoveSocialLink(index int) error {
	return p.mutateSocialLinks(func(links []SocialLink) ([]SocialLink, error) {
		if index < 0 || index >= len(links) {
			return nil, fmt.Errorf("social link index %d out of range", index)
		}
		return append(links[:index], links[index+1:]...), nil
	})
}

// MoveSocialLink reorders a link within the list
func (p *PropertiesPanel) MoveSocialLink(from, to int) error {
	return p.mutateSocialLinks(func(links []SocialLink) ([]SocialLink, error) {
		if from < 0 || from >= len(links) || to < 0 || to >= len(links) {
			return nil, fmt.Errorf("social link move %d->%d out of range", from, to)
		}
		link := links[from]
		links = append(links[:from], links[from+1:]...)
		links = append(links[:to], append([]SocialLink{link}, links[to:]...)...)
		return links, nil
	})
}

// mutateSocialLinks runs a list edit against the selected social component.
// List edits are structural, so they commit immediately.
func (p *PropertiesPanel) mutateSocialLinks(edit func([]SocialLink) ([]SocialLink, error)) error {
	if p.selected == nil {
		return fmt.Errorf("no component selected")
	}
	if p.selected.Type != ComponentSocial {
		return fmt.Errorf("component %s is not a social component", p.selected.ID)
	}

	current := SocialLinksOf(p.selected)
	links := make([]SocialLink, len(current))
	copy(links, current)

	links, err := edit(links)
	if err != nil {
		return err
	}

	p.session.UpdateProperty(p.selected.ID, "socialLinks", links)
	p.debounce.Cancel()
	p.session.CommitHistory()
	return nil
}

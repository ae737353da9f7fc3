package emailbuilder

// ControlKind identifies the editor widget used for a property
type ControlKind string

const (
	ControlText      ControlKind = "text"
	ControlURL       ControlKind = "url"
	ControlTextarea  ControlKind = "textarea"
	ControlColor     ControlKind = "color"
	ControlRange     ControlKind = "range"
	ControlSelect    ControlKind = "select"
	ControlAlignment ControlKind = "alignment"
)

// DescriptorOption is one choice of a select/alignment control
type DescriptorOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PropertyDescriptor describes how a property name should be edited.
// Descriptors are global, keyed by property name: two components sharing a
// property name share its editing UI.
type PropertyDescriptor struct {
	Kind        ControlKind        `json:"kind"`
	Label       string             `json:"label"`
	Placeholder string             `json:"placeholder,omitempty"`
	Min         int                `json:"min,omitempty"`
	Max         int                `json:"max,omitempty"`
	Unit        string             `json:"unit,omitempty"`
	Options     []DescriptorOption `json:"options,omitempty"`
}

// ComponentDefinition is the static catalog entry for one component type
type ComponentDefinition struct {
	Type          ComponentType          `json:"type"`
	Name          string                 `json:"name"`
	Icon          string                 `json:"icon"`
	Category      string                 `json:"category"`
	EditableProps []string               `json:"editableProps"`
	Defaults      map[string]interface{} `json:"defaultValues"`
}

var componentDefinitions = map[ComponentType]ComponentDefinition{
	ComponentText: {
		Type:          ComponentText,
		Name:          "Text",
		Icon:          "fa-align-left",
		Category:      "content",
		EditableProps: []string{"content", "fontSize", "color", "textAlign", "lineHeight", "padding"},
		Defaults: map[string]interface{}{
			"content":    "Type your text here...",
			"fontSize":   "14px",
			"color":      "#333333",
			"textAlign":  "left",
			"lineHeight": "150%",
			"padding":    "10px 0",
		},
	},
	ComponentHeading: {
		Type:          ComponentHeading,
		Name:          "Heading",
		Icon:          "fa-heading",
		Category:      "content",
		EditableProps: []string{"content", "fontSize", "color", "textAlign", "fontWeight"},
		Defaults: map[string]interface{}{
			"content":    "Main Heading",
			"fontSize":   "32px",
			"color":      "#333333",
			"textAlign":  "center",
			"fontWeight": "bold",
		},
	},
	ComponentButton: {
		Type:          ComponentButton,
		Name:          "Button",
		Icon:          "fa-square",
		Category:      "content",
		EditableProps: []string{"text", "url", "backgroundColor", "textColor", "borderRadius", "padding", "fontSize", "align"},
		Defaults: map[string]interface{}{
			"text":            "Click Here",
			"url":             "https://",
			"backgroundColor": "#00ffd0",
			"textColor":       "#000",
			"borderRadius":    "6px",
			"padding":         "10px 30px",
			"fontSize":        "16px",
			"align":           "center",
		},
	},
	ComponentImage: {
		Type:          ComponentImage,
		Name:          "Image",
		Icon:          "fa-image",
		Category:      "media",
		EditableProps: []string{"src", "alt", "width", "link", "align"},
		Defaults: map[string]interface{}{
			"src":   "https://via.placeholder.com/600x300",
			"alt":   "Image",
			"width": "100%",
			"link":  "",
			"align": "center",
		},
	},
	ComponentSocial: {
		Type:          ComponentSocial,
		Name:          "Social Networks",
		Icon:          "fa-share-alt",
		Category:      "media",
		EditableProps: []string{"socialLinks", "iconSize", "align"},
		Defaults: map[string]interface{}{
			"socialLinks": []SocialLink{
				{Network: "facebook", URL: "https://facebook.com"},
				{Network: "instagram", URL: "https://instagram.com"},
				{Network: "whatsapp", URL: "https://whatsapp.com"},
				{Network: "twitter", URL: "https://twitter.com"},
			},
			"iconSize": "32px",
			"align":    "center",
		},
	},
	ComponentHeader: {
		Type:          ComponentHeader,
		Name:          "Header",
		Icon:          "fa-heading",
		Category:      "layout",
		EditableProps: []string{"src", "logoWidth", "backgroundColor", "align", "menu1Text", "menu1Url", "menu2Text", "menu2Url", "menu3Text", "menu3Url", "menu4Text", "menu4Url"},
		Defaults: map[string]interface{}{
			"src":             "https://via.placeholder.com/200x50",
			"logoWidth":       "200px",
			"backgroundColor": "#ffffff",
			"align":           "center",
			"menu1Text":       "Home",
			"menu1Url":        "#",
			"menu2Text":       "About",
			"menu2Url":        "#",
			"menu3Text":       "Contact",
			"menu3Url":        "#",
			"menu4Text":       "",
			"menu4Url":        "",
		},
	},
	ComponentFooter: {
		Type:          ComponentFooter,
		Name:          "Footer",
		Icon:          "fa-shoe-prints",
		Category:      "layout",
		EditableProps: []string{"companyName", "address", "backgroundColor", "align", "link1Text", "link1Url", "link2Text", "link2Url"},
		Defaults: map[string]interface{}{
			"companyName":     "Your Company © 2025",
			"address":         "Company address",
			"backgroundColor": "#f5f5f5",
			"align":           "center",
			"link1Text":       "Privacy Policy",
			"link1Url":        "#",
			"link2Text":       "Terms of Use",
			"link2Url":        "#",
		},
	},
}

var alignmentOptions = []DescriptorOption{
	{Value: "left", Label: "Left"},
	{Value: "center", Label: "Center"},
	{Value: "right", Label: "Right"},
}

var propertyDescriptors = map[string]PropertyDescriptor{
	"content":         {Kind: ControlTextarea, Label: "Content", Placeholder: "Type the text..."},
	"text":            {Kind: ControlText, Label: "Text", Placeholder: "Type the text..."},
	"fontSize":        {Kind: ControlRange, Label: "Font Size", Min: 10, Max: 72, Unit: "px"},
	"color":           {Kind: ControlColor, Label: "Text Color"},
	"backgroundColor": {Kind: ControlColor, Label: "Background Color"},
	"textColor":       {Kind: ControlColor, Label: "Text Color"},
	"textAlign": {Kind: ControlAlignment, Label: "Alignment", Options: append(alignmentOptions,
		DescriptorOption{Value: "justify", Label: "Justify"})},
	"lineHeight":   {Kind: ControlRange, Label: "Line Height", Min: 100, Max: 250, Unit: "%"},
	"padding":      {Kind: ControlText, Label: "Padding", Placeholder: "10px 20px"},
	"borderRadius": {Kind: ControlRange, Label: "Corner Radius", Min: 0, Max: 50, Unit: "px"},
	"url":          {Kind: ControlURL, Label: "URL", Placeholder: "https://..."},
	"logoSrc":      {Kind: ControlURL, Label: "Image/Logo URL", Placeholder: "https://..."},
	"src":          {Kind: ControlURL, Label: "Image URL", Placeholder: "https://..."},
	"alt":          {Kind: ControlText, Label: "Alt Text", Placeholder: "Image description"},
	"width":        {Kind: ControlText, Label: "Width", Placeholder: "100% or 600px"},
	"link":         {Kind: ControlURL, Label: "Link (optional)", Placeholder: "https://..."},
	"align":        {Kind: ControlAlignment, Label: "Alignment", Options: alignmentOptions},
	"fontWeight": {Kind: ControlSelect, Label: "Font Weight", Options: []DescriptorOption{
		{Value: "normal", Label: "Normal"},
		{Value: "bold", Label: "Bold"},
		{Value: "600", Label: "Semi-Bold"},
	}},
	"menu1Text":   {Kind: ControlText, Label: "Menu 1 - Text", Placeholder: "e.g. Home"},
	"menu1Url":    {Kind: ControlURL, Label: "Menu 1 - URL", Placeholder: "https://..."},
	"menu2Text":   {Kind: ControlText, Label: "Menu 2 - Text", Placeholder: "e.g. About"},
	"menu2Url":    {Kind: ControlURL, Label: "Menu 2 - URL", Placeholder: "https://..."},
	"menu3Text":   {Kind: ControlText, Label: "Menu 3 - Text", Placeholder: "e.g. Contact"},
	"menu3Url":    {Kind: ControlURL, Label: "Menu 3 - URL", Placeholder: "https://..."},
	"menu4Text":   {Kind: ControlText, Label: "Menu 4 - Text (optional)", Placeholder: "e.g. Blog"},
	"menu4Url":    {Kind: ControlURL, Label: "Menu 4 - URL (optional)", Placeholder: "https://..."},
	"link1Text":   {Kind: ControlText, Label: "Link 1 - Text", Placeholder: "e.g. Privacy Policy"},
	"link1Url":    {Kind: ControlURL, Label: "Link 1 - URL", Placeholder: "https://..."},
	"link2Text":   {Kind: ControlText, Label: "Link 2 - Text", Placeholder: "e.g. Terms of Use"},
	"link2Url":    {Kind: ControlURL, Label: "Link 2 - URL", Placeholder: "https://..."},
	"companyName": {Kind: ControlText, Label: "Company Name", Placeholder: "Your Company © 2025"},
	"address":     {Kind: ControlText, Label: "Address", Placeholder: "Full address"},
	"logoWidth":   {Kind: ControlText, Label: "Logo Width", Placeholder: "200px"},
	"iconSize":    {Kind: ControlRange, Label: "Icon Size", Min: 16, Max: 64, Unit: "px"},
}

// Definition returns the catalog entry for a component type. Callers must
// treat a miss as a no-op, never a crash.
func Definition(t ComponentType) (ComponentDefinition, bool) {
	def, ok := componentDefinitions[t]
	return def, ok
}

// Descriptor returns the editing metadata for a property name
func Descriptor(name string) (PropertyDescriptor, bool) {
	d, ok := propertyDescriptors[name]
	return d, ok
}

// ByCategory returns the component definitions of a category in palette order
func ByCategory(category string) []ComponentDefinition {
	var defs []ComponentDefinition
	for _, t := range AllComponentTypes {
		def := componentDefinitions[t]
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}

// DefaultProperties returns an independent copy of a type's default property
// map, ready to be attached to a fresh component.
func DefaultProperties(t ComponentType) map[string]interface{} {
	def, ok := componentDefinitions[t]
	if !ok {
		return nil
	}
	props := make(map[string]interface{}, len(def.Defaults))
	for k, v := range def.Defaults {
		if links, ok := v.([]SocialLink); ok {
			cp := make([]SocialLink, len(links))
			copy(cp, links)
			props[k] = cp
			continue
		}
		props[k] = v
	}
	return props
}

package emailbuilder

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse converts an HTML document into the internal template model. The
// import is best-effort: it understands the structural conventions of
// documents produced by Export (es-header/es-content/es-footer marker
// classes) and silently skips markup it does not recognize. On error no
// partial template is returned.
func Parse(html string) (*Template, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("empty HTML document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	root := doc.Find(".es-wrapper").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		return nil, fmt.Errorf("document has no body")
	}

	t := NewTemplate()
	sectionID := 0
	root.Find(".es-header, .es-content, .es-footer").Each(func(_ int, section *goquery.Selection) {
		sectionID++
		switch {
		case section.HasClass("es-header"):
			t.Components = append(t.Components, &Node{Component: parseHeader(section, sectionID)})
		case section.HasClass("es-footer"):
			t.Components = append(t.Components, &Node{Component: parseFooter(section, sectionID)})
		default:
			if group := parseContentSection(section, sectionID); len(group) > 0 {
				t.Components = append(t.Components, &Node{Group: group})
			}
		}
	})

	return t, nil
}

func parseHeader(section *goquery.Selection, id int) *Component {
	props := map[string]interface{}{
		"src":             "",
		"logoWidth":       "200px",
		"backgroundColor": sectionBackground(section, ".es-header-body", "#ffffff"),
		"align":           "center",
	}

	if logo := section.Find("img").First(); logo.Length() > 0 {
		props["src"] = logo.AttrOr("src", "")
		if w := logo.AttrOr("width", ""); w != "" {
			props["logoWidth"] = withPxUnit(w)
		}
	}

	section.Find(".es-menu a").Each(func(i int, a *goquery.Selection) {
		if i >= 4 {
			return
		}
		slot := fmt.Sprintf("menu%d", i+1)
		props[slot+"Text"] = strings.TrimSpace(a.Text())
		props[slot+"Url"] = a.AttrOr("href", "#")
	})

	return &Component{
		ID:         fmt.Sprintf("component-%d", id),
		Type:       ComponentHeader,
		Properties: props,
		Styles:     inlineStyles(section),
		HTML:       outerHTML(section),
	}
}

func parseFooter(section *goquery.Selection, id int) *Component {
	props := map[string]interface{}{
		"companyName":     "",
		"address":         "",
		"backgroundColor": sectionBackground(section, ".es-footer-body", "#f5f5f5"),
		"align":           "center",
	}

	if text := section.Find(".esd-block-text").First(); text.Length() > 0 {
		paragraphs := text.Find("p")
		if paragraphs.Length() > 0 {
			props["companyName"] = strings.TrimSpace(paragraphs.Eq(0).Text())
		}
		if paragraphs.Length() > 1 {
			props["address"] = strings.TrimSpace(paragraphs.Eq(1).Text())
		}
		if paragraphs.Length() == 0 {
			// Footers from other tools often hold bare text lines.
			lines := strings.Split(strings.TrimSpace(text.Text()), "\n")
			if len(lines) > 0 {
				props["companyName"] = strings.TrimSpace(lines[0])
			}
			if len(lines) > 1 {
				props["address"] = strings.TrimSpace(lines[1])
			}
		}
	}

	section.Find(".esd-block-menu a").Each(func(i int, a *goquery.Selection) {
		if i >= 2 {
			return
		}
		slot := fmt.Sprintf("link%d", i+1)
		props[slot+"Text"] = strings.TrimSpace(a.Text())
		props[slot+"Url"] = a.AttrOr("href", "#")
	})

	return &Component{
		ID:         fmt.Sprintf("component-%d", id),
		Type:       ComponentFooter,
		Properties: props,
		Styles:     inlineStyles(section),
		HTML:       outerHTML(section),
	}
}

// parseContentSection extracts the inline components of one es-content
// block: headings, paragraphs, buttons, images and social strips, in that
// scan order. They are grouped under the section they came from.
func parseContentSection(section *goquery.Selection, id int) []*Component {
	var group []*Component
	subID := 0
	nextID := func() string {
		cid := fmt.Sprintf("component-%d-%d", id, subID)
		subID++
		return cid
	}

	section.Find(".esd-block-text").Each(func(_ int, block *goquery.Selection) {
		if heading := block.Find("h1, h2, h3, h4, h5, h6").First(); heading.Length() > 0 {
			group = append(group, &Component{
				ID:   nextID(),
				Type: ComponentHeading,
				Properties: map[string]interface{}{
					"content":    strings.TrimSpace(heading.Text()),
					"fontSize":   styleOr(heading, "font-size", "32px"),
					"color":      styleOr(heading, "color", "#333333"),
					"textAlign":  textAlignOf(heading, block, "center"),
					"fontWeight": styleOr(heading, "font-weight", "bold"),
				},
				Styles: inlineStyles(heading),
				HTML:   outerHTML(heading),
			})
			return
		}

		block.Find("p").Each(func(_ int, p *goquery.Selection) {
			group = append(group, &Component{
				ID:   nextID(),
				Type: ComponentText,
				Properties: map[string]interface{}{
					"content":    strings.TrimSpace(p.Text()),
					"fontSize":   styleOr(p, "font-size", "14px"),
					"color":      styleOr(p, "color", "#333333"),
					"textAlign":  textAlignOf(p, block, "left"),
					"lineHeight": styleOr(p, "line-height", "150%"),
				},
				Styles: inlineStyles(p),
				HTML:   outerHTML(p),
			})
		})
	})

	section.Find(".es-button").Each(func(_ int, btn *goquery.Selection) {
		background := styleOr(btn, "background", "")
		if background == "" {
			background = styleOr(btn, "background-color", "#00ffd0")
		}
		group = append(group, &Component{
			ID:   nextID(),
			Type: ComponentButton,
			Properties: map[string]interface{}{
				"text":            strings.TrimSpace(btn.Text()),
				"url":             btn.AttrOr("href", "#"),
				"backgroundColor": background,
				"textColor":       styleOr(btn, "color", "#000"),
				"borderRadius":    styleOr(btn, "border-radius", "6px"),
				"padding":         styleOr(btn, "padding", "10px 30px"),
				"fontSize":        styleOr(btn, "font-size", "16px"),
				"align":           parentCellAlign(btn, "center"),
			},
			Styles: inlineStyles(btn),
			HTML:   outerHTML(btn),
		})
	})

	section.Find(".esd-block-image img").Each(func(_ int, img *goquery.Selection) {
		link := ""
		if a := img.ParentsFiltered("a").First(); a.Length() > 0 {
			link = a.AttrOr("href", "")
		}
		width := "100%"
		if w := img.AttrOr("width", ""); w != "" {
			width = withPxUnit(w)
		}
		group = append(group, &Component{
			ID:   nextID(),
			Type: ComponentImage,
			Properties: map[string]interface{}{
				"src":   img.AttrOr("src", ""),
				"alt":   img.AttrOr("alt", ""),
				"width": width,
				"link":  link,
				"align": parentCellAlign(img, "center"),
			},
			Styles: inlineStyles(img),
			HTML:   outerHTML(img),
		})
	})

	if social := section.Find(".esd-block-social").First(); social.Length() > 0 {
		var links []SocialLink
		iconSize := "32px"
		social.Find("a").Each(func(_ int, a *goquery.Selection) {
			img := a.Find("img").First()
			network := detectSocialNetwork(img, a.AttrOr("href", ""))
			links = append(links, SocialLink{Network: network, URL: a.AttrOr("href", "")})
			if w := img.AttrOr("width", ""); w != "" {
				iconSize = withPxUnit(w)
			}
		})
		group = append(group, &Component{
			ID:   nextID(),
			Type: ComponentSocial,
			Properties: map[string]interface{}{
				"socialLinks": links,
				"iconSize":    iconSize,
				"align":       parentCellAlign(social.Find("table").First(), "center"),
			},
			Styles: inlineStyles(social),
			HTML:   outerHTML(social),
		})
	}

	return group
}

// detectSocialNetwork recognizes a network from the icon alt text first
// (the shape Export writes), then by sniffing the link URL.
func detectSocialNetwork(img *goquery.Selection, linkURL string) string {
	if img != nil && img.Length() > 0 {
		if alt := img.AttrOr("alt", ""); alt != "" {
			for _, known := range KnownSocialNetworks() {
				if alt == known {
					return known
				}
			}
			if alt == "custom" {
				return "custom"
			}
		}
	}

	lower := strings.ToLower(linkURL)
	switch {
	case strings.Contains(lower, "facebook"):
		return "facebook"
	case strings.Contains(lower, "twitter"), strings.Contains(lower, "x.com"):
		return "twitter"
	case strings.Contains(lower, "instagram"):
		return "instagram"
	case strings.Contains(lower, "youtube"):
		return "youtube"
	case strings.Contains(lower, "linkedin"):
		return "linkedin"
	case strings.Contains(lower, "whatsapp"):
		return "whatsapp"
	default:
		return "other"
	}
}

// Value priority for presentation properties: explicit inline style, then
// presentational attribute, then hard-coded default. (Computed styles are a
// browser concept; server-side import goes straight to the default.)

func styleOr(sel *goquery.Selection, property, def string) string {
	if v := inlineStyleValue(sel, property); v != "" {
		return v
	}
	return def
}

func textAlignOf(sel, cell *goquery.Selection, def string) string {
	if v := inlineStyleValue(sel, "text-align"); v != "" {
		return v
	}
	return parentCellAlign(cell, def)
}

func parentCellAlign(sel *goquery.Selection, def string) string {
	if sel == nil || sel.Length() == 0 {
		return def
	}
	cell := sel.Closest("td")
	if cell.Length() == 0 {
		return def
	}
	if v := cell.AttrOr("align", ""); v != "" {
		return v
	}
	return def
}

func sectionBackground(section *goquery.Selection, bodySelector, def string) string {
	body := section.Find(bodySelector).First()
	if body.Length() == 0 {
		body = section
	}
	if v := inlineStyleValue(body, "background-color"); v != "" {
		return v
	}
	if v := body.AttrOr("bgcolor", ""); v != "" {
		return v
	}
	return def
}

func inlineStyleValue(sel *goquery.Selection, property string) string {
	return inlineStyles(sel)[property]
}

// inlineStyles parses an element's style attribute into a property map.
// The map is also preserved on parsed components for round-trip.
func inlineStyles(sel *goquery.Selection) map[string]string {
	styles := map[string]string{}
	raw, ok := sel.Attr("style")
	if !ok {
		return styles
	}
	for _, rule := range strings.Split(raw, ";") {
		parts := strings.SplitN(rule, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if property != "" && value != "" {
			styles[property] = value
		}
	}
	return styles
}

func outerHTML(sel *goquery.Selection) string {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return html
}

// withPxUnit normalizes a width attribute to a CSS dimension. Percent
// values already carry their unit.
func withPxUnit(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if strings.HasSuffix(v, "%") || strings.HasSuffix(v, "px") {
		return v
	}
	return v + "px"
}

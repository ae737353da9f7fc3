package emailbuilder

import (
	"fmt"
	"strings"
)

// RenderPreview rebuilds the full preview document from the template,
// selection and viewport. It is a pure projection of session state: calling
// it repeatedly with the same inputs yields the same document, and it never
// mutates the model.
func RenderPreview(t *Template, selectedID string, viewport ViewportMode) string {
	var body strings.Builder
	if t != nil {
		for _, component := range t.Flatten() {
			body.WriteString(renderPreviewComponent(component, component.ID == selectedID))
			body.WriteString("\n")
		}
	}

	background := "#ffffff"
	if t != nil && t.Metadata.BackgroundColor != "" {
		background = t.Metadata.BackgroundColor
	}

	bodyClass := "viewport-desktop"
	if viewport == ViewportMobile {
		bodyClass = "viewport-mobile"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { margin: 0; padding: 20px; font-family: Arial, sans-serif; background: %s; }
body.viewport-mobile { max-width: 375px; margin: 0 auto; }
.editable-element { position: relative; cursor: pointer; margin: 8px 0; }
.editable-element.selected { outline: 3px solid #00ffd0; outline-offset: 4px; }
</style>
</head>
<body class="%s">
%s</body>
</html>`, escapeAttr(background), bodyClass, body.String())
}

// renderPreviewComponent wraps a component's markup in its interaction
// frame. The wrapper carries the component identity as data attributes so
// the visual layer can report clicks and drags back to the session.
func renderPreviewComponent(c *Component, selected bool) string {
	class := "editable-element"
	if selected {
		class += " selected"
	}
	return fmt.Sprintf(`<div class="%s" draggable="true" data-component-id="%s" data-component-type="%s">%s</div>`,
		class, escapeAttr(c.ID), escapeAttr(string(c.Type)), renderComponentMarkup(c))
}

// renderComponentMarkup dispatches on the closed component type set. Every
// type has exactly one preview render function.
func renderComponentMarkup(c *Component) string {
	switch c.Type {
	case ComponentText:
		return renderTextPreview(c)
	case ComponentHeading:
		return renderHeadingPreview(c)
	case ComponentButton:
		return renderButtonPreview(c)
	case ComponentImage:
		return renderImagePreview(c)
	case ComponentSocial:
		return renderSocialPreview(c)
	case ComponentHeader:
		return renderHeaderPreview(c)
	case ComponentFooter:
		return renderFooterPreview(c)
	default:
		return ""
	}
}

func renderTextPreview(c *Component) string {
	return fmt.Sprintf(`<p style="font-size: %s; color: %s; text-align: %s; line-height: %s; margin: 10px 0;">%s</p>`,
		escapeAttr(c.StringProperty("fontSize", "14px")),
		escapeAttr(c.StringProperty("color", "#333333")),
		escapeAttr(c.StringProperty("textAlign", "left")),
		escapeAttr(c.StringProperty("lineHeight", "150%")),
		c.StringProperty("content", ""))
}

func renderHeadingPreview(c *Component) string {
	return fmt.Sprintf(`<h1 style="font-size: %s; color: %s; text-align: %s; font-weight: %s; margin: 20px 0;">%s</h1>`,
		escapeAttr(c.StringProperty("fontSize", "32px")),
		escapeAttr(c.StringProperty("color", "#333333")),
		escapeAttr(c.StringProperty("textAlign", "center")),
		escapeAttr(c.StringProperty("fontWeight", "bold")),
		c.StringProperty("content", ""))
}

func renderButtonPreview(c *Component) string {
	return fmt.Sprintf(`<div style="text-align: %s; margin: 20px 0;"><a href="%s" style="display: inline-block; background: %s; color: %s; padding: %s; border-radius: %s; font-size: %s; text-decoration: none;">%s</a></div>`,
		escapeAttr(c.StringProperty("align", "center")),
		escapeAttr(c.StringProperty("url", "#")),
		escapeAttr(c.StringProperty("backgroundColor", "#00ffd0")),
		escapeAttr(c.StringProperty("textColor", "#000")),
		escapeAttr(c.StringProperty("padding", "10px 30px")),
		escapeAttr(c.StringProperty("borderRadius", "6px")),
		escapeAttr(c.StringProperty("fontSize", "16px")),
		c.StringProperty("text", ""))
}

func renderImagePreview(c *Component) string {
	return fmt.Sprintf(`<div style="text-align: %s; margin: 20px 0;"><img src="%s" alt="%s" style="max-width: %s; height: auto;"></div>`,
		escapeAttr(c.StringProperty("align", "center")),
		escapeAttr(c.StringProperty("src", "")),
		escapeAttr(c.StringProperty("alt", "")),
		escapeAttr(c.StringProperty("width", "100%")))
}

func renderHeaderPreview(c *Component) string {
	var menu strings.Builder
	for _, item := range headerMenuItems(c) {
		fmt.Fprintf(&menu, `<a href="%s" style="margin: 0 15px; color: #333; text-decoration: none;">%s</a>`,
			escapeAttr(item.URL), item.Text)
	}

	logo := c.StringProperty("src", c.StringProperty("logoSrc", ""))
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="background: %s; padding: 20px; text-align: %s;">`,
		escapeAttr(c.StringProperty("backgroundColor", "#ffffff")),
		escapeAttr(c.StringProperty("align", "center")))
	fmt.Fprintf(&b, `<img src="%s" alt="Logo" style="width: %s; margin-bottom: 15px;">`,
		escapeAttr(logo), escapeAttr(c.StringProperty("logoWidth", "200px")))
	if menu.Len() > 0 {
		fmt.Fprintf(&b, `<div style="margin-top: 15px;">%s</div>`, menu.String())
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderFooterPreview(c *Component) string {
	var links []string
	for _, item := range footerLinkItems(c) {
		links = append(links, fmt.Sprintf(`<a href="%s" style="color: #666; text-decoration: none; margin: 0 10px;">%s</a>`,
			escapeAttr(item.URL), item.Text))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="background: %s; padding: 30px; text-align: %s; margin-top: 20px;">`,
		escapeAttr(c.StringProperty("backgroundColor", "#f5f5f5")),
		escapeAttr(c.StringProperty("align", "center")))
	fmt.Fprintf(&b, `<p style="margin: 5px 0; font-size: 12px; color: #666;">%s</p>`, c.StringProperty("companyName", ""))
	fmt.Fprintf(&b, `<p style="margin: 5px 0; font-size: 12px; color: #666;">%s</p>`, c.StringProperty("address", ""))
	if len(links) > 0 {
		fmt.Fprintf(&b, `<p style="margin: 10px 0; font-size: 11px;">%s</p>`, strings.Join(links, " | "))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderSocialPreview(c *Component) string {
	links := SocialLinksOf(c)
	size := c.StringProperty("iconSize", "32px")

	var icons strings.Builder
	for _, link := range links {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		src, alt := ResolveSocialIcon(link)
		if src == "" {
			fmt.Fprintf(&icons, `<a href="%s" style="margin: 0 10px; text-decoration: none; display: inline-block;"><span style="display: inline-block; width: %s; height: %s; line-height: %s; text-align: center; font-size: 12px; color: #999;">?</span></a>`,
				escapeAttr(link.URL), escapeAttr(size), escapeAttr(size), escapeAttr(size))
			continue
		}
		fmt.Fprintf(&icons, `<a href="%s" style="margin: 0 10px; text-decoration: none; display: inline-block;"><img src="%s" alt="%s" style="width: %s; height: %s; object-fit: contain; vertical-align: middle;"></a>`,
			escapeAttr(link.URL), escapeAttr(src), escapeAttr(alt), escapeAttr(size), escapeAttr(size))
	}

	inner := icons.String()
	if inner == "" {
		inner = `<p style="font-size: 12px; color: #999;">(Configure social networks in the properties panel)</p>`
	}
	return fmt.Sprintf(`<div style="text-align: %s; margin: 20px 0;">%s</div>`,
		escapeAttr(c.StringProperty("align", "center")), inner)
}

// MenuItem is one navigation entry of a header or footer
type MenuItem struct {
	Text string
	URL  string
}

// headerMenuItems builds the menu list from the individual menuN properties,
// skipping empty slots.
func headerMenuItems(c *Component) []MenuItem {
	var items []MenuItem
	for _, slot := range []string{"menu1", "menu2", "menu3", "menu4"} {
		text := c.StringProperty(slot+"Text", "")
		if text == "" {
			continue
		}
		items = append(items, MenuItem{Text: text, URL: c.StringProperty(slot+"Url", "#")})
	}
	return items
}

func footerLinkItems(c *Component) []MenuItem {
	var items []MenuItem
	for _, slot := range []string{"link1", "link2"} {
		text := c.StringProperty(slot+"Text", "")
		if text == "" {
			continue
		}
		items = append(items, MenuItem{Text: text, URL: c.StringProperty(slot+"Url", "#")})
	}
	return items
}

// escapeAttr escapes a value for safe placement in an HTML attribute. URLs
// keep their ampersands so query parameters survive.
func escapeAttr(value string) string {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") && !strings.HasPrefix(value, "//") {
		value = strings.ReplaceAll(value, "&", "&amp;")
	}
	value = strings.ReplaceAll(value, "\"", "&quot;")
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}

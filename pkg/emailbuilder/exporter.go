package emailbuilder

import (
	"fmt"
	"strings"
)

// ExportFilename is the download name offered for exported documents
const ExportFilename = "email-template.html"

// Export converts a template to a complete, self-contained HTML document
// using table-based layout for email-client compatibility. Output is
// deterministic given the same template value. Missing property values fall
// back to type-appropriate defaults.
func Export(t *Template) string {
	var content strings.Builder
	if t != nil {
		for _, node := range t.Components {
			if node == nil {
				continue
			}
			if node.IsGroup() {
				for _, c := range node.Group {
					content.WriteString(exportComponent(c))
				}
				continue
			}
			content.WriteString(exportComponent(node.Component))
		}
	}

	return strings.Replace(emailShell(t), "{{CONTENT}}", content.String(), 1)
}

// emailShell is the document wrapper with the compatibility boilerplate old
// email clients need.
func emailShell(t *Template) string {
	background := "#fafafa"
	title := "Email"
	if t != nil {
		if t.Metadata.BackgroundColor != "" {
			background = t.Metadata.BackgroundColor
		}
		if t.Metadata.Name != "" {
			title = t.Metadata.Name
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="ltr" xmlns="http://www.w3.org/1999/xhtml" xmlns:o="urn:schemas-microsoft-com:office:office">
<head>
<meta charset="UTF-8">
<meta content="width=device-width, initial-scale=1" name="viewport">
<meta name="x-apple-disable-message-reformatting">
<meta http-equiv="X-UA-Compatible" content="IE=edge">
<meta content="telephone=no" name="format-detection">
<title>%s</title>
<!--[if (mso 16)]>
<style type="text/css">
a {text-decoration: none;}
</style>
<![endif]-->
<!--[if gte mso 9]><style>sup { font-size: 100%% !important; }</style><![endif]-->
<style type="text/css">
body { margin: 0; padding: 0; }
table { border-collapse: collapse; }
img { border: 0; display: block; }
.es-wrapper { width: 100%%; background-color: %s; }
.es-content-body { background-color: #ffffff; }
</style>
</head>
<body class="body">
<div dir="ltr" class="es-wrapper-color">
<table width="100%%" cellspacing="0" cellpadding="0" class="es-wrapper">
<tbody>
<tr>
<td valign="top" class="esd-email-paddings">
{{CONTENT}}
</td>
</tr>
</tbody>
</table>
</div>
</body>
</html>`, escapeAttr(title), escapeAttr(background))
}

// exportComponent dispatches on the closed component type set; renderer and
// exporter must stay in sync per type.
func exportComponent(c *Component) string {
	if c == nil {
		return ""
	}
	switch c.Type {
	case ComponentText:
		return exportText(c)
	case ComponentHeading:
		return exportHeading(c)
	case ComponentButton:
		return exportButton(c)
	case ComponentImage:
		return exportImage(c)
	case ComponentSocial:
		return exportSocial(c)
	case ComponentHeader:
		return exportHeader(c)
	case ComponentFooter:
		return exportFooter(c)
	default:
		return ""
	}
}

// contentBlock wraps one component's inner markup in the nested table
// scaffolding shared by all es-content sections.
func contentBlock(inner string) string {
	return fmt.Sprintf(`
<table cellpadding="0" cellspacing="0" align="center" class="es-content">
<tbody>
<tr>
<td align="center" class="esd-stripe">
<table bgcolor="#ffffff" align="center" cellpadding="0" cellspacing="0" width="600" class="es-content-body">
<tbody>
<tr>
<td align="left" class="esd-structure es-p20">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
<td width="560" align="center" valign="top" class="esd-container-frame">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
%s
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>`, inner)
}

func exportText(c *Component) string {
	align := c.StringProperty("textAlign", "left")
	style := fmt.Sprintf("font-size: %s; color: %s; text-align: %s; line-height: %s;",
		c.StringProperty("fontSize", "14px"),
		c.StringProperty("color", "#333333"),
		align,
		c.StringProperty("lineHeight", "150%"))
	inner := fmt.Sprintf(`<td align="%s" class="esd-block-text"><p style="%s">%s</p></td>`,
		escapeAttr(align), escapeAttr(style), c.StringProperty("content", ""))
	return contentBlock(inner)
}

func exportHeading(c *Component) string {
	align := c.StringProperty("textAlign", "center")
	style := fmt.Sprintf("font-size: %s; color: %s; text-align: %s; font-weight: %s; line-height: 120%%;",
		c.StringProperty("fontSize", "32px"),
		c.StringProperty("color", "#333333"),
		align,
		c.StringProperty("fontWeight", "bold"))
	inner := fmt.Sprintf(`<td align="%s" class="esd-block-text"><h1 style="%s">%s</h1></td>`,
		escapeAttr(align), escapeAttr(style), c.StringProperty("content", ""))
	return contentBlock(inner)
}

func exportButton(c *Component) string {
	radius := c.StringProperty("borderRadius", "6px")
	style := fmt.Sprintf("background: %s; color: %s; border-radius: %s; padding: %s; font-size: %s; text-decoration: none; display: inline-block;",
		c.StringProperty("backgroundColor", "#00ffd0"),
		c.StringProperty("textColor", "#000"),
		radius,
		c.StringProperty("padding", "10px 30px"),
		c.StringProperty("fontSize", "16px"))
	inner := fmt.Sprintf(`<td align="%s" class="esd-block-button es-p10t es-p10b"><span class="es-button-border" style="border-radius: %s"><a href="%s" class="es-button" target="_blank" style="%s">%s</a></span></td>`,
		escapeAttr(c.StringProperty("align", "center")),
		escapeAttr(radius),
		escapeAttr(c.StringProperty("url", "#")),
		escapeAttr(style),
		c.StringProperty("text", ""))
	return contentBlock(inner)
}

func exportImage(c *Component) string {
	img := fmt.Sprintf(`<img src="%s" alt="%s" width="%s" style="display: block;">`,
		escapeAttr(c.StringProperty("src", "")),
		escapeAttr(c.StringProperty("alt", "")),
		escapeAttr(cssDimensionToWidth(c.StringProperty("width", "100%"))))
	if link := c.StringProperty("link", ""); link != "" {
		img = fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, escapeAttr(link), img)
	}
	inner := fmt.Sprintf(`<td align="%s" class="esd-block-image" style="font-size: 0px">%s</td>`,
		escapeAttr(c.StringProperty("align", "center")), img)
	return contentBlock(inner)
}

// exportSocial renders the icon strip. A social component with no
// configured links renders to an empty string so the block is omitted from
// the document entirely.
func exportSocial(c *Component) string {
	links := SocialLinksOf(c)
	size := cssDimensionToWidth(c.StringProperty("iconSize", "32px"))

	var icons strings.Builder
	for _, link := range links {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		src, alt := ResolveSocialIcon(link)
		if src == "" {
			// Custom network without an uploaded icon: generic glyph.
			src = socialIconBasePath + "/" + genericSocialIconFile
		}
		fmt.Fprintf(&icons, `<td align="center" valign="top" style="padding: 0 10px"><a target="_blank" href="%s"><img src="%s" alt="%s" width="%s" height="%s"></a></td>`,
			escapeAttr(link.URL), escapeAttr(src), escapeAttr(alt), escapeAttr(size), escapeAttr(size))
	}
	if icons.Len() == 0 {
		return ""
	}

	inner := fmt.Sprintf(`<td align="%s" class="esd-block-social" style="font-size: 0"><table cellpadding="0" cellspacing="0" class="es-table-not-adapt es-social"><tbody><tr>%s</tr></tbody></table></td>`,
		escapeAttr(c.StringProperty("align", "center")), icons.String())
	return contentBlock(inner)
}

func exportHeader(c *Component) string {
	items := headerMenuItems(c)

	var menu strings.Builder
	if len(items) > 0 {
		width := 100 / len(items)
		for _, item := range items {
			fmt.Fprintf(&menu, `<td align="center" valign="top" width="%d%%" style="padding-top: 15px; padding-bottom: 15px"><a target="_blank" href="%s">%s</a></td>`,
				width, escapeAttr(item.URL), item.Text)
		}
	}

	logo := c.StringProperty("src", c.StringProperty("logoSrc", ""))
	return fmt.Sprintf(`
<table cellpadding="0" cellspacing="0" align="center" class="es-header">
<tbody>
<tr>
<td align="center" class="esd-stripe">
<table bgcolor="%s" align="center" cellpadding="0" cellspacing="0" width="600" class="es-header-body">
<tbody>
<tr>
<td align="left" class="esd-structure es-p10t es-p10b es-p20r es-p20l">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
<td width="560" valign="top" align="center" class="esd-container-frame">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
<td align="center" class="esd-block-image es-p20b" style="font-size: 0px"><a target="_blank"><img src="%s" alt="Logo" width="%s" title="Logo" style="display: block"></a></td>
</tr>
<tr>
<td class="esd-block-menu">
<table cellpadding="0" cellspacing="0" width="100%%" class="es-menu">
<tbody>
<tr>
%s
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>`,
		escapeAttr(c.StringProperty("backgroundColor", "#ffffff")),
		escapeAttr(logo),
		escapeAttr(cssDimensionToWidth(c.StringProperty("logoWidth", "200px"))),
		menu.String())
}

func exportFooter(c *Component) string {
	var links strings.Builder
	for _, item := range footerLinkItems(c) {
		fmt.Fprintf(&links, `<a target="_blank" href="%s" style="color: #666666; text-decoration: none; margin: 0 10px;">%s</a>`,
			escapeAttr(item.URL), item.Text)
	}

	var linksRow string
	if links.Len() > 0 {
		linksRow = fmt.Sprintf(`<tr>
<td align="%s" class="esd-block-menu" style="padding-top: 10px; font-size: 11px">%s</td>
</tr>`, escapeAttr(c.StringProperty("align", "center")), links.String())
	}

	return fmt.Sprintf(`
<table cellpadding="0" cellspacing="0" align="center" class="es-footer">
<tbody>
<tr>
<td align="center" class="esd-stripe">
<table bgcolor="%s" align="center" cellpadding="0" cellspacing="0" width="600" class="es-footer-body">
<tbody>
<tr>
<td align="left" class="esd-structure es-p20">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
<td width="560" align="center" valign="top" class="esd-container-frame">
<table cellpadding="0" cellspacing="0" width="100%%">
<tbody>
<tr>
<td align="%s" class="esd-block-text"><p style="margin: 5px 0; font-size: 12px; color: #666666;">%s</p><p style="margin: 5px 0; font-size: 12px; color: #666666;">%s</p></td>
</tr>
%s
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>
</td>
</tr>
</tbody>
</table>`,
		escapeAttr(c.StringProperty("backgroundColor", "#f5f5f5")),
		escapeAttr(c.StringProperty("align", "center")),
		c.StringProperty("companyName", ""),
		c.StringProperty("address", ""),
		linksRow)
}

// cssDimensionToWidth strips a px suffix for the width attribute old email
// clients require. Percent and unit-free values pass through unchanged.
func cssDimensionToWidth(v string) string {
	return strings.TrimSuffix(strings.TrimSpace(v), "px")
}

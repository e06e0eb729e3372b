package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/fleetra/site/compat"
	"github.com/fleetra/site/config"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderCached serves a page from the page cache. Pages differ only by path
// and compatibility plan, so that pair is the key.
func renderCached(c *fiber.Ctx, build func(path string, plan compat.Plan) g.Node) error {
	plan := planFor(c)
	path := c.Path()
	if pageCache == nil {
		return render(c, build(path, plan))
	}

	body, err := pageCache.GetOrBuild(path+"|"+plan.Key(), config.PageCacheTTL, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := build(path, plan).Render(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

package handlers

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetra/site/config"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

var sitemapPages = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "weekly", "1.0"},
	{"/features", "monthly", "0.9"},
	{"/beta", "monthly", "0.9"},
	{"/about", "monthly", "0.7"},
	{"/investors", "monthly", "0.6"},
	{"/survey", "monthly", "0.6"},
	{"/contact", "yearly", "0.5"},
	{"/terms", "yearly", "0.3"},
	{"/privacy", "yearly", "0.3"},
}

// started stands in for a content timestamp; pages change only on deploy.
var started = time.Now().UTC().Format("2006-01-02")

func HandleSitemap(c *fiber.Ctx) error {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")

	sitemap := Sitemap{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapPages {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        baseURL + p.path,
			LastMod:    started,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	c.Set("Content-Type", "application/xml")
	return c.XML(sitemap)
}

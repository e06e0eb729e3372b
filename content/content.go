// Package content holds the marketing copy shown on the site pages. The copy
// lives in site.yaml so it can change without touching page layout.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type Site struct {
	Name      string    `yaml:"name"`
	Tagline   string    `yaml:"tagline"`
	Hero      Hero      `yaml:"hero"`
	Stats     []Stat    `yaml:"stats"`
	Features  []Feature `yaml:"features"`
	About     About     `yaml:"about"`
	Investors Investors `yaml:"investors"`
	FAQ       []QA      `yaml:"faq"`
	Survey    Survey    `yaml:"survey"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Feature struct {
	Title   string   `yaml:"title"`
	Icon    string   `yaml:"icon"`
	Summary string   `yaml:"summary"`
	Details []string `yaml:"details"`
}

type About struct {
	Story   string   `yaml:"story"`
	Mission string   `yaml:"mission"`
	Team    []Member `yaml:"team"`
}

type Member struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
	Bio  string `yaml:"bio"`
}

type Investors struct {
	Summary    string   `yaml:"summary"`
	Highlights []Stat   `yaml:"highlights"`
	Milestones []string `yaml:"milestones"`
}

type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Survey struct {
	FleetSizes []string `yaml:"fleetSizes"`
	Vehicles   []string `yaml:"vehicles"`
	Roles      []string `yaml:"roles"`
	Challenges []string `yaml:"challenges"`
}

var (
	site     *Site
	loadErr  error
	loadOnce sync.Once
)

// Parse decodes site copy from YAML.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("site content is missing a name")
	}
	if len(s.Features) == 0 {
		return nil, fmt.Errorf("site content has no features")
	}
	return &s, nil
}

// Init parses the embedded copy once.
func Init() error {
	loadOnce.Do(func() {
		site, loadErr = Parse(siteYAML)
	})
	return loadErr
}

// Get returns the embedded site copy
func Get() *Site {
	if err := Init(); err != nil {
		panic(err)
	}
	return site
}

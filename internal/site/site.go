// Package site holds the site metadata rendered into the page chrome.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Meta struct {
	Title   string    `yaml:"title"`
	Author  string    `yaml:"author"`
	Tagline string    `yaml:"tagline"`
	Nav     []NavLink `yaml:"nav"`
}

// Defaults returns the metadata used when no site.yaml is present.
func Defaults() Meta {
	return Meta{
		Title: "jambonne",
		Nav: []NavLink{
			{Label: "Home", Href: "/"},
			{Label: "Blog", Href: "/blog"},
			{Label: "CV", Href: "/cv"},
			{Label: "Reading", Href: "/reading"},
		},
	}
}

// Load reads site metadata from path. A missing file yields the defaults;
// a malformed file is an error so bad config fails at startup, not per
// request.
func Load(path string) (Meta, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Meta{}, fmt.Errorf("read %s: %w", path, err)
	}

	m := Defaults()
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Meta{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

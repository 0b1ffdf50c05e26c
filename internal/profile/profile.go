// Package profile holds the static personal details shown around the console.
package profile

import (
	"fmt"
	"strings"
)

// Profile is the owner of the portfolio.
type Profile struct {
	Name     string
	Tagline  string
	Email    string
	Resume   string
	LinkedIn string
	GitHub   string
	Source   string
	Year     int
}

// Link is a labelled target rendered in the header.
type Link struct {
	Label string
	URL   string
}

// Default returns the built-in profile.
func Default() Profile {
	return Profile{
		Name:     "James Smith",
		Tagline:  "Software Developer | Student Athlete",
		Email:    "james.smith@example.com",
		Resume:   "/path/to/resume.pdf",
		LinkedIn: "https://www.linkedin.com/in/jamessmith",
		GitHub:   "https://www.linkedin.com/in/jamessmith",
		Year:     2024,
	}
}

// Merge fills every empty field of p from fallback.
func (p Profile) Merge(fallback Profile) Profile {
	pick := func(v, alt string) string {
		if strings.TrimSpace(v) == "" {
			return alt
		}
		return v
	}
	p.Name = pick(p.Name, fallback.Name)
	p.Tagline = pick(p.Tagline, fallback.Tagline)
	p.Email = pick(p.Email, fallback.Email)
	p.Resume = pick(p.Resume, fallback.Resume)
	p.LinkedIn = pick(p.LinkedIn, fallback.LinkedIn)
	p.GitHub = pick(p.GitHub, fallback.GitHub)
	p.Source = pick(p.Source, fallback.Source)
	if p.Year <= 0 {
		p.Year = fallback.Year
	}
	return p
}

// Links returns the header links in display order. Links without a target
// are skipped.
func (p Profile) Links() []Link {
	var links []Link
	if p.Email != "" {
		links = append(links, Link{Label: "Email", URL: "mailto:" + p.Email})
	}
	if p.Resume != "" {
		links = append(links,
			Link{Label: "Resume (download)", URL: resumeURL(p.Resume)},
			Link{Label: "Resume (view)", URL: resumeURL(p.Resume)},
		)
	}
	if p.LinkedIn != "" {
		links = append(links, Link{Label: "LinkedIn", URL: p.LinkedIn})
	}
	if p.GitHub != "" {
		links = append(links, Link{Label: "Github", URL: p.GitHub})
	}
	return links
}

// Copyright returns the footer notice.
func (p Profile) Copyright() string {
	return fmt.Sprintf("© %d %s. All rights reserved.", p.Year, p.Name)
}

func resumeURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return "file://" + path
}

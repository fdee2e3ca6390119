// Package types defines the structured document model shared across the
// rendering engine, the ATS scorer, and the API surface.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"
)

// Resume is the canonical structured resume document. JSON tags define the
// wire and storage format.
type Resume struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title,omitempty"`
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	SkillGroups    []SkillGroup    `json:"skill_groups,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// Contact holds candidate contact information rendered in the document header.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is a labeled URL (portfolio, LinkedIn, GitHub).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Experience represents a single role at a company.
// Dates use "YYYY-MM"; EndDate may be "present" for a current role.
type Experience struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// Education represents a degree or program entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// SkillGroup is a labeled group of skills ("Languages", "Infrastructure").
type SkillGroup struct {
	Label  string   `json:"label"`
	Skills []string `json:"skills"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// AllSkills returns every skill across all groups, in document order.
func (r *Resume) AllSkills() []string {
	var skills []string
	for _, g := range r.SkillGroups {
		skills = append(skills, g.Skills...)
	}
	return skills
}

// AllBullets returns every experience and project bullet, in document order.
func (r *Resume) AllBullets() []string {
	var bullets []string
	for _, e := range r.Experience {
		bullets = append(bullets, e.Bullets...)
	}
	for _, p := range r.Projects {
		bullets = append(bullets, p.Highlights...)
	}
	return bullets
}

// PlainText flattens the resume into a single text blob for keyword scanning.
// Section order follows the document; no formatting is applied.
func (r *Resume) PlainText() string {
	var sb strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			if p == "" {
				continue
			}
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}

	write(r.Contact.Name, r.Contact.Email, r.Contact.Phone, r.Contact.Location)
	write(r.Summary)
	for _, e := range r.Experience {
		write(e.Company, e.Role)
		write(e.Bullets...)
	}
	for _, ed := range r.Education {
		write(ed.Institution, ed.Degree, ed.Field, ed.Notes)
	}
	for _, g := range r.SkillGroups {
		write(g.Label)
		write(g.Skills...)
	}
	for _, p := range r.Projects {
		write(p.Name, p.Description)
		write(p.Highlights...)
	}
	for _, c := range r.Certifications {
		write(c.Name, c.Issuer)
	}
	return sb.String()
}

// SortedExperience returns experience entries newest-first: current roles
// before ended ones, then by descending start date. The receiver is not
// modified; renderers rely on that.
func (r *Resume) SortedExperience() []Experience {
	sorted := make([]Experience, len(r.Experience))
	copy(sorted, r.Experience)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].CurrentRole(), sorted[j].CurrentRole()
		if ci != cj {
			return ci
		}
		return sorted[i].StartDate > sorted[j].StartDate
	})
	return sorted
}

// CurrentRole reports whether the experience entry is ongoing.
func (e *Experience) CurrentRole() bool {
	return strings.EqualFold(strings.TrimSpace(e.EndDate), "present")
}

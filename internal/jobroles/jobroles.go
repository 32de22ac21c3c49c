// Package jobroles holds the job-requirement catalog analyses are scored
// against. The catalog is an explicit value passed to callers; nothing here
// is process-global.
package jobroles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "embed"
)

// ErrRoleNotFound is returned when a category/role pair is not in the catalog.
var ErrRoleNotFound = errors.New("job role not found")

// RecommendedSkills splits a role's nice-to-have skills by kind.
type RecommendedSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Profile describes what a target role requires. It is read-only per
// analysis call.
type Profile struct {
	Description       string            `json:"description"`
	RequiredSkills    []string          `json:"required_skills"`
	RecommendedSkills RecommendedSkills `json:"recommended_skills"`
	RequireGPA        bool              `json:"require_gpa,omitempty"`
}

// RequirementText renders the profile as the prose block sent to the opinion
// provider alongside the resume text.
func (p Profile) RequirementText() string {
	var b strings.Builder
	b.WriteString(p.Description)
	if len(p.RequiredSkills) > 0 {
		b.WriteString("\nRequired skills: ")
		b.WriteString(strings.Join(p.RequiredSkills, ", "))
	}
	if len(p.RecommendedSkills.Technical) > 0 {
		b.WriteString("\nRecommended technical skills: ")
		b.WriteString(strings.Join(p.RecommendedSkills.Technical, ", "))
	}
	if len(p.RecommendedSkills.Soft) > 0 {
		b.WriteString("\nRecommended soft skills: ")
		b.WriteString(strings.Join(p.RecommendedSkills.Soft, ", "))
	}
	return b.String()
}

// Catalog maps category name to role name to profile.
type Catalog map[string]map[string]Profile

//go:embed roles.json
var defaultRolesJSON []byte

// Default returns the embedded role catalog.
func Default() Catalog {
	var catalog Catalog
	// Embedded catalog is validated by tests; a decode failure here would be
	// a build defect.
	if err := json.Unmarshal(defaultRolesJSON, &catalog); err != nil {
		panic(fmt.Sprintf("jobroles: embedded catalog invalid: %v", err))
	}
	return catalog
}

// LoadFile reads a catalog from a JSON file with the same shape as the
// embedded default.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job roles %s: %w", path, err)
	}
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse job roles %s: %w", path, err)
	}
	return catalog, nil
}

// Categories lists catalog categories in sorted order.
func (c Catalog) Categories() []string {
	out := make([]string, 0, len(c))
	for category := range c {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Roles lists the role names within a category in sorted order.
func (c Catalog) Roles(category string) []string {
	roles := c[category]
	out := make([]string, 0, len(roles))
	for role := range roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Profile looks up the requirement profile for a category/role pair.
func (c Catalog) Profile(category, role string) (Profile, error) {
	roles, ok := c[category]
	if !ok {
		return Profile{}, fmt.Errorf("category %q: %w", category, ErrRoleNotFound)
	}
	profile, ok := roles[role]
	if !ok {
		return Profile{}, fmt.Errorf("role %q in category %q: %w", role, category, ErrRoleNotFound)
	}
	return profile, nil
}

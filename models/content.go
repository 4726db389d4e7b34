package models

import (
	"encoding/json"
	"fmt"
)

// Content is the canonical editable payload shared by profiles and
// portfolio snapshots. It is stored as a single JSON document column.
type Content struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Projects     []Project     `json:"projects"`
	Skills       Skills        `json:"skills"`
	Experience   []Experience  `json:"experience,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
}

type PersonalInfo struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Bio          string       `json:"bio"`
	Email        string       `json:"email"`
	PhoneNo      string       `json:"phoneNo,omitempty"`
	ProfilePhoto string       `json:"profilePhoto,omitempty"`
	Socials      []SocialLink `json:"socials"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	GithubLink  string `json:"githubLink,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

type Certificate struct {
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	IssuedOn       string `json:"issuedOn"`
	CertificateID  string `json:"certificateId,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty"`
}

// SkillKind discriminates the three wire shapes the skills field was
// stored under over time.
type SkillKind string

const (
	SkillsSimple      SkillKind = "simple"      // ["Go", "SQL"]
	SkillsNamed       SkillKind = "named"       // [{"name": "Go", "icon": "..."}]
	SkillsCategorized SkillKind = "categorized" // [{"title": "Backend", "skills": ["Go"]}]
)

type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type SkillGroup struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// Skills is a tagged union. Renderers must branch on Kind; they never get
// to see the raw JSON. Items is populated for SkillsSimple and
// SkillsNamed, Groups for SkillsCategorized.
type Skills struct {
	Kind   SkillKind
	Items  []Skill
	Groups []SkillGroup
}

// SimpleSkills builds a SkillsSimple value from plain names.
func SimpleSkills(names ...string) Skills {
	items := make([]Skill, 0, len(names))
	for _, n := range names {
		items = append(items, Skill{Name: n})
	}
	return Skills{Kind: SkillsSimple, Items: items}
}

// IsCategorized reports whether Groups carries the payload. Renderers
// branch on these predicates instead of inspecting raw JSON.
func (s Skills) IsCategorized() bool { return s.Kind == SkillsCategorized }

// IsNamed reports whether the items may carry icons.
func (s Skills) IsNamed() bool { return s.Kind == SkillsNamed }

// Names flattens any kind into the plain skill names, in document order.
func (s Skills) Names() []string {
	switch s.Kind {
	case SkillsCategorized:
		var names []string
		for _, g := range s.Groups {
			names = append(names, g.Skills...)
		}
		return names
	default:
		names := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			names = append(names, it.Name)
		}
		return names
	}
}

func (s Skills) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SkillsNamed:
		if s.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.Items)
	case SkillsCategorized:
		if s.Groups == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.Groups)
	default:
		names := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			names = append(names, it.Name)
		}
		return json.Marshal(names)
	}
}

// UnmarshalJSON detects the stored shape structurally. An empty or null
// array comes back as an empty simple list.
func (s *Skills) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("skills: expected array: %w", err)
	}
	if len(raw) == 0 {
		*s = Skills{Kind: SkillsSimple, Items: []Skill{}}
		return nil
	}

	// Bare strings mean the simple shape; otherwise probe the first object
	// for the categorized marker.
	var name string
	if err := json.Unmarshal(raw[0], &name); err == nil {
		items := make([]Skill, 0, len(raw))
		for _, r := range raw {
			var n string
			if err := json.Unmarshal(r, &n); err != nil {
				return fmt.Errorf("skills: mixed array shapes")
			}
			items = append(items, Skill{Name: n})
		}
		*s = Skills{Kind: SkillsSimple, Items: items}
		return nil
	}

	var probe struct {
		Title  *string   `json:"title"`
		Skills *[]string `json:"skills"`
	}
	if err := json.Unmarshal(raw[0], &probe); err != nil {
		return fmt.Errorf("skills: unrecognized element: %w", err)
	}
	if probe.Title != nil || probe.Skills != nil {
		var groups []SkillGroup
		if err := json.Unmarshal(data, &groups); err != nil {
			return fmt.Errorf("skills: categorized shape: %w", err)
		}
		*s = Skills{Kind: SkillsCategorized, Groups: groups}
		return nil
	}

	var items []Skill
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("skills: named shape: %w", err)
	}
	*s = Skills{Kind: SkillsNamed, Items: items}
	return nil
}

// DefaultContent is the scaffold seeded into a new profile when the
// caller does not supply content.
func DefaultContent(user *User) Content {
	name := "My Name"
	if user != nil && user.Name != "" {
		name = user.Name
	}
	email := ""
	photo := ""
	if user != nil {
		email = user.Email
		photo = user.Image
	}
	return Content{
		PersonalInfo: PersonalInfo{
			Name:         name,
			Title:        "Professional Title",
			Bio:          "A short bio about myself.",
			Email:        email,
			ProfilePhoto: photo,
			Socials:      []SocialLink{},
		},
		Projects:   []Project{},
		Skills:     Skills{Kind: SkillsSimple, Items: []Skill{}},
		Experience: []Experience{},
	}
}

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"folio/models"
)

// Dotted field paths address single values inside a content document:
//
//	personalInfo.name
//	personalInfo.socials.0.link
//	projects.2.title
//	experience.1.current
//	certificates.0.provider
//	skills              (comma-separated names, replaces the whole list)
//
// Writing to index == len(list) appends a fresh element, which is how the
// builder adds rows.

// Apply sets one field. The value is a string except for boolean fields,
// which also accept a bool.
func Apply(content *models.Content, path string, value any) error {
	head, rest := splitPath(path)

	switch head {
	case "personalInfo":
		return applyPersonalInfo(&content.PersonalInfo, rest, value)
	case "projects":
		return applyListField(&content.Projects, rest, value, setProjectField)
	case "experience":
		return applyListField(&content.Experience, rest, value, setExperienceField)
	case "certificates":
		return applyListField(&content.Certificates, rest, value, setCertificateField)
	case "skills":
		if rest != "" {
			return fmt.Errorf("skills has no sub-fields, got %q", path)
		}
		s, err := stringValue(value)
		if err != nil {
			return err
		}
		content.Skills = parseSkillList(s)
		return nil
	default:
		return fmt.Errorf("unknown field path %q", path)
	}
}

// Remove drops the list element the path names, e.g. "projects.1" or
// "personalInfo.socials.0".
func Remove(content *models.Content, path string) error {
	head, rest := splitPath(path)

	switch head {
	case "personalInfo":
		sub, idxPart := splitPath(rest)
		if sub != "socials" {
			return fmt.Errorf("cannot remove from %q", path)
		}
		return removeAt(&content.PersonalInfo.Socials, idxPart)
	case "projects":
		return removeAt(&content.Projects, rest)
	case "experience":
		return removeAt(&content.Experience, rest)
	case "certificates":
		return removeAt(&content.Certificates, rest)
	default:
		return fmt.Errorf("cannot remove from %q", path)
	}
}

func splitPath(path string) (head, rest string) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

func applyPersonalInfo(info *models.PersonalInfo, path string, value any) error {
	head, rest := splitPath(path)

	if head == "socials" {
		return applyListField(&info.Socials, rest, value, setSocialField)
	}

	s, err := stringValue(value)
	if err != nil {
		return err
	}

	switch head {
	case "name":
		info.Name = s
	case "title":
		info.Title = s
	case "bio":
		info.Bio = s
	case "email":
		info.Email = s
	case "phoneNo":
		info.PhoneNo = s
	case "profilePhoto":
		info.ProfilePhoto = s
	default:
		return fmt.Errorf("unknown personalInfo field %q", head)
	}
	return nil
}

// applyListField resolves "N.field" against a slice, appending a zero
// element when N equals the current length.
func applyListField[T any](list *[]T, path string, v any, set func(*T, string, any) error) error {
	idxPart, field := splitPath(path)
	if field == "" {
		return fmt.Errorf("list path needs an index and a field, got %q", path)
	}

	idx, err := strconv.Atoi(idxPart)
	if err != nil || idx < 0 {
		return fmt.Errorf("invalid list index %q", idxPart)
	}
	if idx > len(*list) {
		return fmt.Errorf("index %d out of range (len %d)", idx, len(*list))
	}
	if idx == len(*list) {
		var zero T
		*list = append(*list, zero)
	}

	return set(&(*list)[idx], field, v)
}

func setSocialField(s *models.SocialLink, field string, v any) error {
	str, err := stringValue(v)
	if err != nil {
		return err
	}
	switch field {
	case "platform":
		s.Platform = str
	case "link":
		s.Link = str
	default:
		return fmt.Errorf("unknown social field %q", field)
	}
	return nil
}

func setProjectField(p *models.Project, field string, v any) error {
	str, err := stringValue(v)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		p.Title = str
	case "description":
		p.Description = str
	case "link":
		p.Link = str
	case "githubLink":
		p.GithubLink = str
	case "image":
		p.Image = str
	default:
		return fmt.Errorf("unknown project field %q", field)
	}
	return nil
}

func setExperienceField(e *models.Experience, field string, v any) error {
	if field == "current" {
		b, err := boolValue(v)
		if err != nil {
			return err
		}
		e.Current = b
		return nil
	}

	str, err := stringValue(v)
	if err != nil {
		return err
	}
	switch field {
	case "company":
		e.Company = str
	case "position":
		e.Position = str
	case "startDate":
		e.StartDate = str
	case "endDate":
		e.EndDate = str
	case "description":
		e.Description = str
	case "location":
		e.Location = str
	default:
		return fmt.Errorf("unknown experience field %q", field)
	}
	return nil
}

func setCertificateField(ct *models.Certificate, field string, v any) error {
	str, err := stringValue(v)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		ct.Name = str
	case "provider":
		ct.Provider = str
	case "issuedOn":
		ct.IssuedOn = str
	case "certificateId":
		ct.CertificateID = str
	case "certificateUrl":
		ct.CertificateURL = str
	default:
		return fmt.Errorf("unknown certificate field %q", field)
	}
	return nil
}

func removeAt[T any](list *[]T, idxPart string) error {
	idx, err := strconv.Atoi(idxPart)
	if err != nil || idx < 0 || idx >= len(*list) {
		return fmt.Errorf("invalid list index %q", idxPart)
	}
	*list = append((*list)[:idx], (*list)[idx+1:]...)
	return nil
}

// parseSkillList turns comma-separated input into a simple skill list,
// the shape the builder's single text input edits.
func parseSkillList(input string) models.Skills {
	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return models.SimpleSkills(names...)
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string value, got %T", v)
	}
	return s, nil
}

func boolValue(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return false, fmt.Errorf("expected bool value, got %T", v)
	}
}

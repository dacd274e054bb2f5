package models

import "strings"

// Skill is a named proficiency. Level is expected to lie in 1..5; the store
// does not enforce it. It is int32 so both transports carry it unchanged.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Level int32  `json:"level" binding:"min=1,max=5"`
}

// Profile is the public record owned by exactly one account.
type Profile struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"userId"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Bio       string  `json:"bio"`
	Location  string  `json:"location"`
	Skills    []Skill `json:"skills"`
	GitHub    string  `json:"github,omitempty"`
	LinkedIn  string  `json:"linkedin,omitempty"`
	Website   string  `json:"website,omitempty"`
	AvatarURL string  `json:"avatarUrl,omitempty"`
}

// ProfileUpsertFields is a partial profile. A nil member means "leave the
// stored value alone"; a non-nil Skills replaces the whole sequence.
type ProfileUpsertFields struct {
	Name      *string  `json:"name,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Skills    *[]Skill `json:"skills,omitempty" binding:"omitempty,dive"`
	GitHub    *string  `json:"github,omitempty"`
	LinkedIn  *string  `json:"linkedin,omitempty"`
	Website   *string  `json:"website,omitempty"`
	AvatarURL *string  `json:"avatarUrl,omitempty"`
}

// Apply merges f over p field by field (shallow merge).
func (p *Profile) Apply(f ProfileUpsertFields) {
	setIfPresent(&p.Name, f.Name)
	setIfPresent(&p.Title, f.Title)
	setIfPresent(&p.Bio, f.Bio)
	setIfPresent(&p.Location, f.Location)
	setIfPresent(&p.GitHub, f.GitHub)
	setIfPresent(&p.LinkedIn, f.LinkedIn)
	setIfPresent(&p.Website, f.Website)
	setIfPresent(&p.AvatarURL, f.AvatarURL)
	if f.Skills != nil {
		p.Skills = cloneSkills(*f.Skills)
	}
}

// Clone returns a deep copy, so callers cannot reach store-owned memory.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Skills = cloneSkills(p.Skills)
	return &c
}

// MatchesSkill reports whether any skill name contains filter, ignoring case.
// An empty filter matches every profile.
func (p *Profile) MatchesSkill(filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return true
		}
	}
	return false
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// cloneSkills never returns nil so profiles always serialize "skills": [].
func cloneSkills(in []Skill) []Skill {
	out := make([]Skill, len(in))
	copy(out, in)
	return out
}

// AvatarUpload is a presigned slot for a profile picture. The client PUTs the
// image bytes to UploadURL and then stores PublicURL as the profile avatar.
type AvatarUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

// clearMarker entered at an edit prompt empties the field.
const clearMarker = "-"

func (a *App) List(ctx context.Context, skill string) error {
	profiles, err := a.profileService.List(ctx, skill)
	if err != nil {
		return err
	}
	renderList(a.out, profiles)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.profileService.Get(ctx, id)
	if err != nil {
		return err
	}
	renderProfile(a.out, p)
	return nil
}

func (a *App) Me(ctx context.Context) error {
	p, err := a.profileService.Mine(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintln(a.out, "You have no profile yet, use 'edit' to create one")
		return nil
	}
	renderProfile(a.out, p)
	return nil
}

// promptField asks for a new value of one field. An empty answer keeps the
// current value and yields nil.
func (a *App) promptField(label, current string) (*string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s] (enter %q to clear)", label, current, clearMarker)
	}

	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}

	switch v {
	case "":
		return nil, nil
	case clearMarker:
		empty := ""
		return &empty, nil
	}
	return &v, nil
}

// Edit walks through the profile fields. Fields left blank are not sent, so
// the server keeps their current values.
func (a *App) Edit(ctx context.Context) error {
	cur, err := a.profileService.Mine(ctx)
	if err != nil {
		return err
	}
	if cur == nil {
		cur = &pb.Profile{}
		fmt.Fprintln(a.out, "Creating your profile. Press Enter to skip a field.")
	}

	req := &pb.UpsertProfileRequest{}
	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"Name", cur.Name, &req.Name},
		{"Title", cur.Title, &req.Title},
		{"Location", cur.Location, &req.Location},
		{"GitHub URL", cur.Github, &req.Github},
		{"LinkedIn URL", cur.Linkedin, &req.Linkedin},
		{"Website", cur.Website, &req.Website},
	}
	for _, f := range fields {
		v, err := a.promptField(f.label, f.current)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	bio, err := getMultiline(a.reader, "Bio (leave empty to keep current)", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		req.Bio = &bio
	}

	p, err := a.profileService.Update(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile saved")
	renderProfile(a.out, p)
	return nil
}

func (a *App) AddSkill(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Skill name", a.out)
	if err != nil {
		return err
	}

	raw, err := getSimpleText(a.reader, "Level (1-5)", a.out)
	if err != nil {
		return err
	}
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("level must be a number between 1 and 5")
	}

	p, err := a.profileService.AddSkill(ctx, name, level)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Skill added, you now have %d skill(s)\n", len(p.Skills))
	return nil
}

// Avatar uploads an image file and sets it as the profile picture. The path
// is prompted for when not given on the command line.
func (a *App) Avatar(ctx context.Context, path string) error {
	if path == "" {
		var err error
		path, err = getSimpleText(a.reader, "Path to image file", a.out)
		if err != nil {
			return err
		}
	}
	if path == "" {
		return fmt.Errorf("no file given")
	}

	p, err := a.profileService.UploadAvatar(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Avatar updated: %s\n", p.AvatarUrl)
	return nil
}

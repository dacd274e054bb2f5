package grpc

import (
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

func toPBAccount(a models.PublicAccount) *pb.Account {
	return &pb.Account{Id: a.ID, Email: a.Email, Name: a.Name}
}

func toPBSkills(in []models.Skill) []*pb.Skill {
	out := make([]*pb.Skill, 0, len(in))
	for _, s := range in {
		out = append(out, &pb.Skill{Id: s.ID, Name: s.Name, Level: s.Level})
	}
	return out
}

func toPBProfile(p *models.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{
		Id:        p.ID,
		UserId:    p.OwnerID,
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		Location:  p.Location,
		Skills:    toPBSkills(p.Skills),
		Github:    p.GitHub,
		Linkedin:  p.LinkedIn,
		Website:   p.Website,
		AvatarUrl: p.AvatarURL,
	}
}

func fromPBSkills(in []*pb.Skill) []models.Skill {
	out := make([]models.Skill, 0, len(in))
	for _, s := range in {
		if s == nil {
			continue
		}
		out = append(out, models.Skill{ID: s.Id, Name: s.Name, Level: s.Level})
	}
	return out
}

func fromPBUpsert(req *pb.UpsertProfileRequest) models.ProfileUpsertFields {
	f := models.ProfileUpsertFields{
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		Location:  req.Location,
		GitHub:    req.Github,
		LinkedIn:  req.Linkedin,
		Website:   req.Website,
		AvatarURL: req.AvatarUrl,
	}
	if req.Skills != nil {
		skills := fromPBSkills(req.Skills.Items)
		f.Skills = &skills
	}
	return f
}

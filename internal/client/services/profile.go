package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/client/client"
	"github.com/dmitrijs2005/skillboard/internal/filex"
	"github.com/dmitrijs2005/skillboard/internal/netx"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

const maxAvatarSize = 5 << 20

var (
	ErrInvalidSkill = errors.New("skill name is required and level must be between 1 and 5")

	// Test seams.
	readFile     = filex.ReadLimited
	uploadObject = netx.UploadToPresignedURL
)

// ProfileService drives the profile directory for the CLI.
type ProfileService interface {
	List(ctx context.Context, skill string) ([]*pb.Profile, error)
	Get(ctx context.Context, id string) (*pb.Profile, error)
	Mine(ctx context.Context) (*pb.Profile, error)
	Update(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error)
	AddSkill(ctx context.Context, name string, level int) (*pb.Profile, error)
	UploadAvatar(ctx context.Context, path string) (*pb.Profile, error)
}

type profileService struct {
	client  client.Client
	timeout time.Duration
}

func NewProfileService(c client.Client, timeout time.Duration) ProfileService {
	return &profileService{client: c, timeout: timeout}
}

func (s *profileService) List(ctx context.Context, skill string) ([]*pb.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.ListProfiles(ctx, skill)
}

func (s *profileService) Get(ctx context.Context, id string) (*pb.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.GetProfile(ctx, id)
}

// Mine returns nil without error when the caller has not created a profile.
func (s *profileService) Mine(ctx context.Context) (*pb.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.GetMyProfile(ctx)
}

func (s *profileService) Update(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.UpsertProfile(ctx, req)
}

// AddSkill appends a skill to the caller's current skill list and writes the
// whole list back. The server assigns the skill ID.
func (s *profileService) AddSkill(ctx context.Context, name string, level int) (*pb.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" || level < 1 || level > 5 {
		return nil, ErrInvalidSkill
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	mine, err := s.client.GetMyProfile(ctx)
	if err != nil {
		return nil, err
	}

	var skills []*pb.Skill
	if mine != nil {
		skills = append(skills, mine.Skills...)
	}
	skills = append(skills, &pb.Skill{Name: name, Level: int32(level)})

	return s.client.UpsertProfile(ctx, &pb.UpsertProfileRequest{Skills: &pb.SkillList{Items: skills}})
}

// UploadAvatar uploads the image at path to object storage through a
// presigned URL and stores its public URL on the caller's profile.
func (s *profileService) UploadAvatar(ctx context.Context, path string) (*pb.Profile, error) {
	data, err := readFile(path, maxAvatarSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	target, err := s.client.GetAvatarUploadURL(ctx)
	if err != nil {
		return nil, err
	}

	if err := uploadObject(ctx, target.UploadUrl, filex.ContentType(path), data); err != nil {
		return nil, fmt.Errorf("avatar upload: %w", err)
	}

	publicURL := target.PublicUrl
	return s.client.UpsertProfile(ctx, &pb.UpsertProfileRequest{AvatarUrl: &publicURL})
}

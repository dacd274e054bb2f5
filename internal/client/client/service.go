package client

import (
	"context"

	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, password, name string) (*pb.Account, error)
	Login(ctx context.Context, email, password string) (*pb.Account, error)
	Logout()
	Ping(ctx context.Context) error
	ListProfiles(ctx context.Context, skill string) ([]*pb.Profile, error)
	GetProfile(ctx context.Context, id string) (*pb.Profile, error)
	GetMyProfile(ctx context.Context) (*pb.Profile, error)
	UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error)
	GetAvatarUploadURL(ctx context.Context) (*pb.GetAvatarUploadURLResponse, error)
}

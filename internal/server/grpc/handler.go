package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/skillboard/internal/common"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes. Anything unexpected is
// logged and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrStorageNotConfigured):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "email, password and name are required")
	}

	res, err := s.accounts.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "id", res.Account.ID)
	return &pb.AuthResponse{User: toPBAccount(res.Account), Token: res.Token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AuthResponse{User: toPBAccount(res.Account), Token: res.Token}, nil
}

func (s *GRPCServer) ListProfiles(ctx context.Context, req *pb.ListProfilesRequest) (*pb.ListProfilesResponse, error) {
	ps, err := s.profiles.List(ctx, req.Skill)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPBProfile(p))
	}
	return &pb.ListProfilesResponse{Profiles: out}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	p, err := s.profiles.GetByID(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProfileResponse{Profile: toPBProfile(p)}, nil
}

func (s *GRPCServer) GetMyProfile(ctx context.Context, req *pb.GetMyProfileRequest) (*pb.GetMyProfileResponse, error) {
	p, err := s.profiles.GetByOwner(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetMyProfileResponse{Profile: toPBProfile(p)}, nil
}

func (s *GRPCServer) UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.UpsertProfileResponse, error) {
	p, err := s.profiles.Upsert(ctx, tokenFromContext(ctx), fromPBUpsert(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if id := identityFromContext(ctx); id != nil {
		s.logger.Info(ctx, "Profile saved", "owner", id.ID, "profile", p.ID)
	}
	return &pb.UpsertProfileResponse{Profile: toPBProfile(p)}, nil
}

func (s *GRPCServer) GetAvatarUploadURL(ctx context.Context, req *pb.GetAvatarUploadURLRequest) (*pb.GetAvatarUploadURLResponse, error) {
	up, err := s.profiles.AvatarUploadURL(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetAvatarUploadURLResponse{Key: up.Key, UploadUrl: up.UploadURL, PublicUrl: up.PublicURL}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

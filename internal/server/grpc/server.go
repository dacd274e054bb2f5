package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/skillboard/internal/logging"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"google.golang.org/grpc"
)

// AccountService is the subset of services.AccountService used here.
type AccountService interface {
	Register(ctx context.Context, email, secret, name string) (*models.AuthResult, error)
	Login(ctx context.Context, email, secret string) (*models.AuthResult, error)
}

// ProfileService is the subset of services.ProfileService used here.
type ProfileService interface {
	List(ctx context.Context, skillFilter string) ([]*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByOwner(ctx context.Context, token string) (*models.Profile, error)
	Upsert(ctx context.Context, token string, fields models.ProfileUpsertFields) (*models.Profile, error)
	AvatarUploadURL(ctx context.Context, token string) (*models.AvatarUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedSkillboardServiceServer
	address  string
	accounts AccountService
	profiles ProfileService
	codec    auth.Codec
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, ps ProfileService, codec auth.Codec) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: as,
		profiles: ps,
		codec:    codec,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterSkillboardServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	<-stopped
	return nil
}

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/skillboard/internal/common"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SkillboardServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewSkillboardClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSkillboardServiceClient(conn)
	return nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) Register(ctx context.Context, email, password, name string) (*pb.Account, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.Token)
	return resp.User, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.Account, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.Token)
	return resp.User, nil
}

// Logout forgets the session token. Tokens are stateless, so the server is
// not contacted.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) ListProfiles(ctx context.Context, skill string) ([]*pb.Profile, error) {
	resp, err := s.client.ListProfiles(ctx, &pb.ListProfilesRequest{Skill: skill})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profiles, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, id string) (*pb.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

// GetMyProfile returns nil without error when the caller has no profile yet.
func (s *GRPCClient) GetMyProfile(ctx context.Context) (*pb.Profile, error) {
	resp, err := s.client.GetMyProfile(ctx, &pb.GetMyProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

func (s *GRPCClient) UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error) {
	resp, err := s.client.UpsertProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

func (s *GRPCClient) GetAvatarUploadURL(ctx context.Context) (*pb.GetAvatarUploadURLResponse, error) {
	resp, err := s.client.GetAvatarUploadURL(ctx, &pb.GetAvatarUploadURLRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return common.ErrDuplicateAccount
	case codes.Unauthenticated:
		if st.Message() == common.ErrInvalidCredentials.Error() {
			return common.ErrInvalidCredentials
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return common.ErrProfileNotFound
	case codes.FailedPrecondition:
		return common.ErrStorageNotConfigured
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

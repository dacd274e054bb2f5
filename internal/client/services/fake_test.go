package services

import (
	"context"

	pb "github.com/dmitrijs2005/skillboard/internal/proto"
	"google.golang.org/protobuf/proto"
)

type fakeClient struct {
	registerArgs []string
	loginArgs    []string
	loggedOut    bool
	closed       bool
	hadDeadline  bool

	account *pb.Account
	authErr error
	pingErr error

	profiles []*pb.Profile
	mine     *pb.Profile
	mineErr  error
	upserts  []*pb.UpsertProfileRequest
	upErr    error
	url      *pb.GetAvatarUploadURLResponse
	urlErr   error
	listSkl  string
	getID    string
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(ctx context.Context, email, password, name string) (*pb.Account, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.registerArgs = []string{email, password, name}
	return f.account, f.authErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*pb.Account, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.loginArgs = []string{email, password}
	return f.account, f.authErr
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) ListProfiles(ctx context.Context, skill string) ([]*pb.Profile, error) {
	f.listSkl = skill
	return f.profiles, nil
}

func (f *fakeClient) GetProfile(ctx context.Context, id string) (*pb.Profile, error) {
	f.getID = id
	for _, p := range f.profiles {
		if p.Id == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeClient) GetMyProfile(ctx context.Context) (*pb.Profile, error) {
	return f.mine, f.mineErr
}

func (f *fakeClient) UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error) {
	f.upserts = append(f.upserts, req)
	if f.upErr != nil {
		return nil, f.upErr
	}
	p := &pb.Profile{Id: "1"}
	if f.mine != nil {
		p = proto.Clone(f.mine).(*pb.Profile)
	}
	if req.Skills != nil {
		p.Skills = req.Skills.Items
	}
	if req.AvatarUrl != nil {
		p.AvatarUrl = *req.AvatarUrl
	}
	return p, nil
}

func (f *fakeClient) GetAvatarUploadURL(ctx context.Context) (*pb.GetAvatarUploadURLResponse, error) {
	return f.url, f.urlErr
}

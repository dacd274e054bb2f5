package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

type fakeAuth struct {
	regEmail, regName string
	regPass           []byte
	loginEmail        string
	loginPass         []byte

	account    *pb.Account
	err        error
	pingErr    error
	loggedOut  bool
	closeCalls int
}

func (f *fakeAuth) Register(_ context.Context, email string, password []byte, name string) (*pb.Account, error) {
	f.regEmail, f.regPass, f.regName = email, append([]byte(nil), password...), name
	return f.account, f.err
}
func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (*pb.Account, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	return f.account, f.err
}
func (f *fakeAuth) Logout(context.Context) { f.loggedOut = true }
func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { f.closeCalls++; return nil }

type fakeProfiles struct {
	list    []*pb.Profile
	listSkl string
	byID    map[string]*pb.Profile
	mine    *pb.Profile
	updates []*pb.UpsertProfileRequest
	skill   string
	level   int
	avatar  string
	err     error
}

func (f *fakeProfiles) List(_ context.Context, skill string) ([]*pb.Profile, error) {
	f.listSkl = skill
	return f.list, f.err
}
func (f *fakeProfiles) Get(_ context.Context, id string) (*pb.Profile, error) {
	return f.byID[id], f.err
}
func (f *fakeProfiles) Mine(context.Context) (*pb.Profile, error) { return f.mine, f.err }
func (f *fakeProfiles) Update(_ context.Context, req *pb.UpsertProfileRequest) (*pb.Profile, error) {
	f.updates = append(f.updates, req)
	p := &pb.Profile{Id: "9"}
	if req.Name != nil {
		p.Name = *req.Name
	}
	return p, f.err
}
func (f *fakeProfiles) AddSkill(_ context.Context, name string, level int) (*pb.Profile, error) {
	f.skill, f.level = name, level
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Profile{Skills: []*pb.Skill{{Name: name, Level: int32(level)}}}, nil
}
func (f *fakeProfiles) UploadAvatar(_ context.Context, path string) (*pb.Profile, error) {
	f.avatar = path
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Profile{AvatarUrl: "http://cdn/" + path}, nil
}

// stubPrompts answers getSimpleText from answers in order and getPassword
// with pw.
func stubPrompts(t *testing.T, pw string, answers ...string) *[]string {
	t.Helper()
	origST, origPW, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() { getSimpleText, getPassword, getMultiline = origST, origPW, origML })

	prompts := &[]string{}
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		*prompts = append(*prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return "", nil }
	return prompts
}

func newTestApp(as *fakeAuth, ps *fakeProfiles) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		authService:    as,
		profileService: ps,
		reader:         bufio.NewReader(strings.NewReader("")),
		out:            out,
	}, out
}

// Package services contains the CLI application services. They sit between
// the REPL and the gRPC client, applying per-request timeouts and the small
// amount of client-side logic the commands need.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/client/client"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

// AuthService covers account registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, name string) (*pb.Account, error)
	Login(ctx context.Context, email string, password []byte) (*pb.Account, error)
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	timeout time.Duration
}

// NewAuthService constructs an AuthService bound to the given API client.
// A zero timeout leaves the caller's context untouched.
func NewAuthService(c client.Client, timeout time.Duration) AuthService {
	return &authService{client: c, timeout: timeout}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func (a *authService) Register(ctx context.Context, email string, password []byte, name string) (*pb.Account, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()
	return a.client.Register(ctx, email, string(password), name)
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*pb.Account, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()
	return a.client.Login(ctx, email, string(password))
}

func (a *authService) Logout(ctx context.Context) {
	a.client.Logout()
}

func (a *authService) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

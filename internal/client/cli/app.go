package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/client/client"
	"github.com/dmitrijs2005/skillboard/internal/client/config"
	"github.com/dmitrijs2005/skillboard/internal/client/services"
	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	reader         *bufio.Reader
	out            io.Writer

	mu      sync.RWMutex
	account *pb.Account
	mode    Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewSkillboardClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config:         c,
		authService:    services.NewAuthService(apiClient, c.RequestTimeout),
		profileService: services.NewProfileService(apiClient, c.RequestTimeout),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Server is %s\n", mode)
	}
}

func (a *App) setAccount(acc *pb.Account) {
	a.mu.Lock()
	a.account = acc
	a.mu.Unlock()
}

func (a *App) currentAccount() *pb.Account {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.account
}

func (a *App) isLoggedIn() bool {
	return a.currentAccount() != nil
}

func (a *App) checkOnline(ctx context.Context) {
	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

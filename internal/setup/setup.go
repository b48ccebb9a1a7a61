package setup

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/config"
	"github.com/indigo-rhapsody/indigo-admin/internal/handler"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/markdown"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware/ratelimiter"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
	"github.com/indigo-rhapsody/indigo-admin/web"
)

const (
	templateReloadInterval = 5 * time.Second
	loginLimiterExpiration = 10 * time.Minute
)

type Dependencies struct {
	Handler      *handler.Handler
	Auth         *middleware.Auth
	Public       config.Public
	Env          config.Environment
	Static       fs.FS
	LoginLimiter *ratelimiter.UserRateLimiter
	CancelFunc   context.CancelFunc
}

func SetupDependencies(cfg *config.Config, env config.Environment) (*Dependencies, error) {
	ctx, cancel := context.WithCancel(context.Background())

	embedded, err := fs.Sub(web.FS, "templates")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	templates, err := handler.LoadTemplates(embedded)
	if err != nil {
		cancel()
		return nil, err
	}

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open embedded static files: %w", err)
	}

	apiClient := apiclient.New(env.APIBaseURL, env.APITimeout)
	apiClient.ProductsLimit = cfg.Public.ProductsLimit

	h := handler.New(templates, cfg.Public, env, apiClient, markdown.New())
	if env.Debug && cfg.Public.TemplatesDir != "" {
		startTemplateReloader(ctx, h, cfg.Public.TemplatesDir)
	}

	cookies := session.NewCookieStore([]byte(cfg.SessionSecret()), cfg.Public.SecureCookies)
	limiter := ratelimiter.PerMinute(cfg.Public.LoginPerMin, cfg.Public.LoginBurst, loginLimiterExpiration)

	return &Dependencies{
		Handler:      h,
		Auth:         middleware.NewAuth(cookies),
		Public:       cfg.Public,
		Env:          env,
		Static:       static,
		LoginLimiter: limiter,
		CancelFunc: func() {
			cancel()
			limiter.Stop()
		},
	}, nil
}

// startTemplateReloader re-reads templates from dir while ctx is alive. A
// broken edit is logged and the previous set stays in use.
func startTemplateReloader(ctx context.Context, h *handler.Handler, dir string) {
	ticker := time.NewTicker(templateReloadInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				templates, err := handler.LoadTemplates(os.DirFS(dir))
				if err != nil {
					logger.Log.Error("reloading templates", "dir", dir, "error", err)
					continue
				}
				h.SetTemplates(templates)
			}
		}
	}()
}

package app

import (
	"context"
	"errors"
	"io"
	"net/http"

	config "github.com/DRSN-tech/sneakers-store/internal/cfg"
	"github.com/DRSN-tech/sneakers-store/internal/delivery/v1/console"
	v1Http "github.com/DRSN-tech/sneakers-store/internal/delivery/v1/http"
	"github.com/DRSN-tech/sneakers-store/internal/repository/memory"
	"github.com/DRSN-tech/sneakers-store/internal/usecase"
	"github.com/DRSN-tech/sneakers-store/pkg/closer"
	"github.com/DRSN-tech/sneakers-store/pkg/e"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает хранилище, отчёты и способы их вывода.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	reportUC *usecase.ReportUseCase
	renderer *console.Renderer
}

// NewApp наполняет хранилище стартовым ассортиментом; отчёт пишется в out.
func NewApp(cfg *config.Config, logger logger.Logger, out io.Writer) (*App, error) {
	if cfg == nil || cfg.Http == nil || cfg.App == nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.New("config is incomplete"))
	}

	itemRepo := memory.NewItemRepo()
	itemRepo.AddBulk(defaultCatalog())
	logger.Debugf("catalog loaded: %d items", itemRepo.Len())

	return &App{
		cfg:      cfg,
		logger:   logger,
		reportUC: usecase.NewReportUC(itemRepo, logger),
		renderer: console.NewRenderer(out),
	}, nil
}

// Run печатает отчёт. Если HTTP включён, дополнительно обслуживает запросы
// до отмены ctx или падения сервера.
func (a *App) Run(ctx context.Context) error {
	if err := a.renderer.RenderReport(ctx, a.reportUC); err != nil {
		a.logger.Errorf(err, "failed to render report")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if !a.cfg.Http.Enabled {
		return nil
	}

	return a.serve(ctx)
}

func (a *App) serve(ctx context.Context) error {
	cl := closer.NewCloser(a.cfg.App.ForcedTimeout)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(a.reportUC)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)
	cl.Add("http server", httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-ctx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	if appErr != nil {
		return e.Wrap(whereami.WhereAmI(), appErr)
	}

	return nil
}

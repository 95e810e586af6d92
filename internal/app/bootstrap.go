package app

import (
	"errors"

	"github.com/stocklens/internal/config"
	"github.com/stocklens/internal/provider"
	"github.com/stocklens/internal/router"
)

// BuildRunner 构建托管 HTTP API 的运行器
func BuildRunner(cfg *config.Config, container *provider.Container) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}

	engine := router.SetupRouter(cfg, container)
	return NewRunner(NewHTTPService(cfg.Server, engine)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Config.Server.Mode)
	return RunWithOptions(runner, opts)
}

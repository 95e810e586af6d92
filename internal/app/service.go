package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

var errNoService = errors.New("no service to run")

// Service 可被 Runner 托管的服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 托管单个服务：启动后等待退出信号或启动失败，再在超时内优雅停止
type Runner struct {
	service Service
}

// NewRunner 创建服务运行器
func NewRunner(service Service) *Runner {
	return &Runner{service: service}
}

// RunWithOptions 运行服务，收到 opts.Signals 中的信号时触发停止
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动服务并阻塞到 ctx 取消或服务自行退出。
// ctx 取消视为正常关闭，返回 nil；启动失败时返回启动错误；停止失败时返回停止错误。
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || r.service == nil {
		return errNoService
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	name := r.service.Name()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exited := make(chan error, 1)
	log.Infow("service_start", "service", name)
	go func() {
		exited <- r.service.Start(ctx)
	}()

	var runErr error
	startReturned := false
	select {
	case <-ctx.Done():
		log.Infow("service_shutdown", "service", name, "reason", context.Cause(ctx))
	case runErr = <-exited:
		startReturned = true
		if runErr != nil {
			log.Errorw("service_start_failed", "service", name, "error", runErr)
		}
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := r.service.Stop(stopCtx); err != nil {
		log.Errorw("service_stop_failed", "service", name, "error", err)
		if runErr == nil {
			runErr = err
		}
	}
	if !startReturned {
		select {
		case <-exited:
		case <-stopCtx.Done():
			log.Warnw("service_exit_timeout", "service", name, "timeout", stopTimeout)
		}
	}
	log.Infow("service_exit", "service", name)
	return runErr
}

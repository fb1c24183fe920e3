package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"catalog/config"
	"catalog/infrastructure/persistence"
	apperrors "catalog/pkg/errors"
	"catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Build-time variables (set via ldflags)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// options 根命令的全局参数，子命令共享
type options struct {
	configPath string
	cfg        *config.Config
}

// bootstrap 加载配置、初始化日志并装配用例；每个命令只调用一次
func (o *options) bootstrap() (*App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArgument, "failed to load configuration")
	}
	o.cfg = cfg

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewBuilder(cfg).Build()
}

// NewRootCommand catalogctl 根命令
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Catalog administration CLI",
		Long:          "Manage categories, cast members, genres and videos of the video catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// 每个命令一个 request id，贯穿日志与 GORM trace
			ctx := persistence.ContextWithRequestID(cmd.Context(), uuid.NewString())
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")

	root.AddCommand(
		newVersionCommand(),
		newMigrateCommand(opts),
		newSeedCommand(opts),
		newSearchCommand(opts),
		newGetCommand(opts),
		newDeleteCommand(opts),
	)
	return root
}

// Execute 运行 CLI 并返回退出码
func Execute() int {
	root := NewRootCommand()
	err := root.ExecuteContext(context.Background())
	defer logger.Sync()
	if err == nil {
		return 0
	}

	appErr := apperrors.FromDomainError(err)
	logger.Debug("Command failed", zap.String("code", string(appErr.Code)), zap.Error(err))
	writeJSON(os.Stderr, map[string]any{"error": appErr})
	return appErr.ExitCode()
}

// runWithApp 装配用例后执行 fn，并记录命令生命周期
func runWithApp(opts *options, fn func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := opts.bootstrap()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		log := logger.FromContext(ctx).With(zap.String("command", cmd.CommandPath()))
		log.Debug("Command started", zap.Strings("args", args))

		if err := fn(ctx, app, cmd, args); err != nil {
			return err
		}
		log.Debug("Command finished")
		return nil
	}
}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalogctl %s (commit: %s, built: %s)\n", version, commit, buildTime)
		},
	}
}

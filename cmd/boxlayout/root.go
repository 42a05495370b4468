package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/debug"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
	stdin  io.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "boxlayout",
		Short:         "Compute CSS block, flexbox and grid layouts of document trees",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd, cfgFile); err != nil {
				return err
			}
			a.stdin = cmd.InOrStdin()
			a.logger = debug.New(debug.Config{
				Level:  a.v.GetString("log.level"),
				Format: a.v.GetString("log.format"),
				File:   a.v.GetString("log.file"),
			}, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
			a.logger.Debug("configuration loaded", zap.String("config", a.v.ConfigFileUsed()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
			_ = debug.Close()
		},
	}
	root.SetVersionTemplate("boxlayout version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ./.boxlayout.yaml or ~/.boxlayout.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("log-file", "", "also write JSON logs to this file")
	pf.IntP("jobs", "j", runtime.NumCPU(), "documents processed concurrently")
	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
		"jobs":       "jobs",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(a.newLayoutCmd(), a.newCheckCmd(), newVersionCmd())
	return root
}

// initConfig reads the config file, if any, and BOXLAYOUT_* environment
// variables. Flags set on the command line take precedence over both.
func (a *app) initConfig(cmd *cobra.Command, cfgFile string) error {
	v := a.v
	v.SetEnvPrefix("BOXLAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".boxlayout")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if jobs := v.GetInt("jobs"); jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", jobs)
	}
	return nil
}

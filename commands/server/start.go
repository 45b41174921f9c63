package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/barter/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// FlagHome is the viper key of the node directory.
	FlagHome = "home"

	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log-level"
)

// Options are the node settings an application is generated with.
type Options struct {
	Home   string
	Logger log.Logger
	Debug  bool
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(*Options) (abci.Application, error)

// StartCmd runs the abci server until the process is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the abci server",
		RunE: func(cmd *cobra.Command, args []string) error {
			allowed, err := log.AllowLevel(viper.GetString(flagLogLevel))
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			logger := log.NewFilter(logger, allowed)
			opts := &Options{
				Home:   viper.GetString(FlagHome),
				Logger: logger,
				Debug:  viper.GetBool(flagDebug),
			}
			app, err := gen(opts)
			if err != nil {
				return err
			}
			return serve(viper.GetString(flagBind), app, logger)
		},
	}
	cmd.Flags().String(flagBind, "tcp://localhost:26658", "address server listens on")
	cmd.Flags().Bool(flagDebug, false, "call stack returned on error")
	cmd.Flags().String(flagLogLevel, "info", "lowest level logged: debug, info, error or none")
	_ = viper.BindPFlag(flagBind, cmd.Flags().Lookup(flagBind))
	_ = viper.BindPFlag(flagDebug, cmd.Flags().Lookup(flagDebug))
	_ = viper.BindPFlag(flagLogLevel, cmd.Flags().Lookup(flagLogLevel))
	return cmd
}

func serve(addr string, app abci.Application, logger log.Logger) error {
	logger.Info("Starting ABCI app", "bind", addr)

	svr, err := server.NewServer(addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrNetwork, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrNetwork, "cannot start server: %s", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	logger.Info("Stopping ABCI app", "signal", sig.String())
	return svr.Stop()
}

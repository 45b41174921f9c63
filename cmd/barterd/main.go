package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/cmd/barterd/app"
	"github.com/iov-one/barter/commands/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "barter")

	root := &cobra.Command{
		Use:   "barterd",
		Short: "Two party token swap node",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(viper.GetString(server.FlagHome))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().String(server.FlagHome, filepath.Join(os.ExpandEnv("$HOME"), ".barter"), "directory to store files under")
	_ = viper.BindPFlag(server.FlagHome, root.PersistentFlags().Lookup(server.FlagHome))

	root.AddCommand(
		server.InitCmd(app.GenInitOptions, logger),
		server.StartCmd(app.GenerateApp, logger),
		validateCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the app version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(barter.Version())
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads barterd.toml from the home directory when present.
// Every setting can be overridden with a BARTER_ environment variable.
func loadConfig(home string) error {
	viper.SetEnvPrefix("BARTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("barterd")
	viper.SetConfigType("toml")
	viper.AddConfigPath(home)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [genesis.json...]",
		Short: "Check that genesis files load",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{server.GenesisPath(viper.GetString(server.FlagHome))}
			}
			return server.ValidateGenesis(app.Initializers(), args)
		},
	}
}

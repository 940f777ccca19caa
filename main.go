package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/tableau/engine"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/testbed"
)

const defaultConfigPath = "tableau.toml"

func main() {
	configPath := os.Getenv("TABLEAU_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	config, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		core.LogFatal("invalid configuration: %s", err)
	}

	game := testbed.NewGame(config)

	e, err := engine.New(game)
	if err != nil {
		core.LogFatal("failed to create the engine: %s", err)
	}
	if err := testbed.Attach(game, e); err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("engine initialization failed: %s", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		core.LogInfo("signal received, requesting shutdown")
		e.RequestShutdown()
	}()

	if err := e.Run(); err != nil {
		core.LogFatal("engine run failed: %s", err)
	}
}

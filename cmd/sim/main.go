package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/rts/internal/config"
	"github.com/zeusync/rts/internal/injector"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

func run() error {
	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	path := flag.String("config", envCfg.ConfigPath, "path to the scenario YAML")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		if cfg, err = config.LoadFile(*path); err != nil {
			return err
		}
	}
	envCfg.Override(cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	engine, err := injector.InitializeEngine(cfg)
	if err != nil {
		return err
	}

	report, err := engine.Run(cfg.Scenario)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(report)
}

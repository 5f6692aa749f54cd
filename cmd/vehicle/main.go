package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"braitenberg/internal/app"
	"braitenberg/internal/core"
	applog "braitenberg/internal/observability/log"
	_ "braitenberg/internal/sims/avoidance"
	_ "braitenberg/internal/sims/phototaxis"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	points := flag.Bool("points", false, "write the trajectory to stdout as \"x y\" lines")
	list := flag.Bool("list", false, "list registered sims and exit")
	flag.Parse()

	if *list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}

	logger, err := applog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	sim, err := cfg.Build(logger)
	if err != nil {
		logger.Fatal("build sim", zap.Error(err))
	}
	logger.Info("starting run", zap.String("sim", sim.Name()), zap.Int64("seed", cfg.Seed), sim.Parameters().Field())

	summary, path := app.Run(sim, cfg.Seed)
	logger.Info("run complete", summary.Fields()...)

	if !*points {
		return
	}
	w := bufio.NewWriter(os.Stdout)
	for _, p := range path {
		w.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		logger.Fatal("write points", zap.Error(err))
	}
}

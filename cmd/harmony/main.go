package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"harmony-match/internal/cli"
	"harmony-match/internal/config"
	"harmony-match/internal/domain"
	"harmony-match/internal/service"
)

func main() {
	loadDotEnv(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: config: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	engine, err := service.NewCompatibilityEngine(domain.DefaultTables())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	root := cli.NewRootCommand(cli.Deps{
		Engine:    engine,
		Validator: service.NewYearValidator(cfg.MinBirthYear, time.Now),
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

// loadDotEnv carga .env (o los archivos dados) y avisa en w si no pudo.
func loadDotEnv(w io.Writer, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		fmt.Fprintf(w, "warning: loading .env: %v\n", err)
	}
}

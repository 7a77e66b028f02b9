// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	finsight "github.com/finsolve/finsight"
	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/core"
)

func main() {
	// Environment overrides are optional; a missing .env is not an error.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "finsight",
		Usage: "Role-gated document question answering over internal documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP question-answering service",
				Action: serveCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8000",
					},
					&cli.StringFlag{
						Name:  "seed-file",
						Usage: "YAML file with roles and users to register at startup",
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest documents from department subdirectories",
				ArgsUsage: "<directory>",
				Action:    ingestCommand,
				Flags:     storeFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Answer a one-off question from the command line",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:  "role",
						Usage: "Role to answer as",
						Value: "employee",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// storeFlags are shared by every command that opens the stores.
func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "finsight_db",
			EnvVars: []string{"FINSIGHT_DB"},
		},
		&cli.StringFlag{
			Name:    "chroma-url",
			Usage:   "Chroma server URL (omit for in-process vector store)",
			EnvVars: []string{"FINSIGHT_CHROMA_URL"},
		},
		&cli.StringFlag{
			Name:    "collection",
			Usage:   "Chroma collection name",
			Value:   "finsight-docs",
			EnvVars: []string{"FINSIGHT_COLLECTION"},
		},
		&cli.StringFlag{
			Name:    "ai-host",
			Usage:   "OpenAI-compatible service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"FINSIGHT_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "all-minilm",
			EnvVars: []string{"FINSIGHT_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "generation-model",
			Usage:   "Generation model name",
			Value:   "llama3.2",
			EnvVars: []string{"FINSIGHT_GENERATION_MODEL"},
		},
	}
}

func newApp(c *cli.Context, extra ...finsight.AppOption) (*finsight.App, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGenerationModel(c.String("generation-model")),
	)

	opts := []finsight.AppOption{finsight.WithAIConfig(aiConfig)}
	if url := c.String("chroma-url"); url != "" {
		opts = append(opts, finsight.WithChroma(url, c.String("collection")))
	}
	opts = append(opts, extra...)

	return finsight.NewApp(c.String("db"), opts...)
}

func serveCommand(c *cli.Context) error {
	var extra []finsight.AppOption
	if seed := c.String("seed-file"); seed != "" {
		extra = append(extra, finsight.WithSeedFile(seed))
	}

	app, err := newApp(c, extra...)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer app.Close()

	srv, err := app.NewServer()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(c.String("addr"))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func ingestCommand(c *cli.Context) error {
	root := c.Args().First()
	if root == "" {
		return fmt.Errorf("directory argument is required")
	}

	app, err := newApp(c)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer app.Close()

	pipeline, err := app.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.IngestDir(context.Background(), root)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Ingested %d files (%d chunks)\n", report.Files, report.Chunks)
	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "  skipped %s: %v\n", failure.Path, failure.Err)
	}
	if len(report.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "%d files skipped\n", len(report.Failures))
	}
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question argument is required")
	}

	app, err := newApp(c)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer app.Close()

	role := c.String("role")
	app.Registry().AddRole(core.Role{Name: role})

	engine, err := app.NewQueryEngine()
	if err != nil {
		return err
	}

	answer, err := engine.Ask(context.Background(), &core.User{Username: "cli", RoleName: role}, question)
	if err != nil {
		return err
	}

	fmt.Println(answer.Response)
	if len(answer.Sources) > 0 {
		fmt.Println()
		fmt.Println("Sources:")
		for _, source := range answer.Sources {
			fmt.Printf("  %s\n", source)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

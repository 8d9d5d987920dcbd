package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"finance-qa-agent/internal/di"
	"finance-qa-agent/internal/infrastructure/env"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns the container lifecycle so the log file is flushed even when the
// analysis fails.
func run() error {
	envService := env.NewEnvService()

	mode := envService.Get("SUPERVISOR_MODE")
	if mode == "" {
		mode = "pipeline"
	}

	cfg := di.Config{
		Mode:             mode,
		SearchMaxResults: envService.GetInt("SEARCH_MAX_RESULTS", 5),
		HTTPTimeout:      time.Duration(envService.GetInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if mode == di.ModeLLM {
		cfg.OpenRouterAPIKey = envService.MustGet("OPENROUTER_API_KEY")
		cfg.OpenRouterModel = envService.MustGet("OPENROUTER_MODEL_NAME")
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Printf("Initialization failed: %v", err)
		return err
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if mode == di.ModeLLM {
		return runLLM(ctx, container)
	}
	return runPipeline(ctx, container)
}

func runPipeline(ctx context.Context, container *di.Container) error {
	report, err := container.Supervisor.Run(ctx)
	if err != nil {
		container.Logger.Error("Analysis failed", "error", err)
		container.UserInteraction.ShowError(ctx, fmt.Sprintf("Analysis failed: %v", err))
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		container.Logger.Error("Report serialization failed", "error", err)
		return err
	}

	fmt.Println("\n=== FINAL OUTPUT ===")
	fmt.Println(string(data))
	fmt.Println("====================")
	return nil
}

func runLLM(ctx context.Context, container *di.Container) error {
	task, err := container.UserInteraction.AskQuestion(ctx,
		"Describe the analysis to run (e.g. \"Why did AAPL move last week?\"):")
	if err != nil {
		container.Logger.Error("Failed to read task", "error", err)
		return err
	}

	container.Logger.Info("Task started", "task", task)

	result, err := container.TaskExecutor.Execute(ctx, task)
	if err != nil {
		container.Logger.Error("Task failed", "error", err)
		container.UserInteraction.ShowError(ctx, fmt.Sprintf("Task failed: %v", err))
		return err
	}

	container.Logger.Info("Task completed", "iterations", result.Iterations)
	fmt.Println("\n=== FINAL OUTPUT ===")
	fmt.Println(result.FinalAnswer)
	fmt.Println("====================")
	return nil
}

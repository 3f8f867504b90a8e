package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indomind-ai/indomind/pkg/admin"
	"github.com/indomind-ai/indomind/pkg/config"
	"github.com/indomind-ai/indomind/pkg/models"
	"github.com/indomind-ai/indomind/pkg/registry"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Interactive operator console over the function-calling protocol",
	RunE:  runAdmin,
}

func runAdmin(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	gemini, err := models.NewGeminiLLM(ctx, models.GeminiOptions{APIKey: cfg.APIKey, Model: cfg.Model})
	if err != nil {
		return fmt.Errorf("init gemini: %w", err)
	}

	console := admin.NewConsole(gemini, registry.NewDefault(), nil)
	var turns []models.AdminTurn

	fmt.Println("Indomind operator console. Type a command, or 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}
		if command == "exit" || command == "quit" {
			break
		}

		out, err := console.Command(ctx, turns, command)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		for _, trace := range out.Traces {
			fmt.Println(trace)
		}
		fmt.Println(out.Reply)
		turns = out.History
	}
	return scanner.Err()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/raido/internal"
	"github.com/starford/raido/internal/backlinks"
	"github.com/starford/raido/internal/mcpserver"
	"github.com/starford/raido/internal/vault"
	pkgconfig "github.com/starford/raido/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := vault.NewFS(cfg.Vault.Path, cfg.Vault.NoteExtensions())
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	svc := backlinks.NewService(store, logger)
	return mcpserver.New(svc).ServeStdio()
}

func runBacklinks(ctx context.Context, cmd *cli.Command) error {
	target := cmd.Args().First()
	if target == "" {
		return fmt.Errorf("usage: raido backlinks <target basename>")
	}

	vaultPath := cmd.String("vault")
	exts := []string{".md"}
	if vaultPath == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		vaultPath = cfg.Vault.Path
		exts = cfg.Vault.NoteExtensions()
	}

	store, err := vault.NewFS(vaultPath, exts)
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := backlinks.NewService(store, logger)

	tree, err := svc.Backlinks(ctx, target)
	if err != nil {
		return err
	}
	if len(tree.Groups) == 0 {
		fmt.Printf("no backlinks for %s\n", target)
		return nil
	}

	for _, g := range tree.Groups {
		fmt.Println(g.File)
		hits, err := svc.FileHits(ctx, target, g.File)
		if err != nil {
			return err
		}
		for _, h := range hits {
			fmt.Printf("  %d:%d\t%s\t%s\n", h.Span.Start.Line, h.Span.Start.Character, h.Kind, h.Preview)
		}
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "raido",
		Usage:  "Backlink index for a Markdown note vault: find every place that links to a note",
		Action: runServe,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API with SSE change notifications",
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Start the MCP server on stdio",
				Action: runMCP,
			},
			{
				Name:      "backlinks",
				Usage:     "Print the backlink tree for a note",
				ArgsUsage: "<target basename>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "vault",
						Usage: "Vault directory (overrides config)",
					},
				},
				Action: runBacklinks,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

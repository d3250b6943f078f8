package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"chatpal/src/config"
	"chatpal/src/conversation"
	"chatpal/src/qwenclient"
	"chatpal/src/session"
	"chatpal/src/store"
)

// CLI represents the main CLI structure
type CLI struct {
	Config   string `default:"bot_config.json" help:"Path to the bot config file"`
	LogLevel string `default:"warn" help:"Log level"`

	Chat ChatCmd `cmd:"" default:"1" help:"Start the interactive chat session (default)"`
}

// ChatCmd starts the interactive session.
type ChatCmd struct{}

func (c *ChatCmd) Run(cli *CLI) error {
	logger := createSessionLogger(cli.LogLevel)

	cfg, created, err := config.Load(cli.Config)
	if err != nil {
		createCLILogger(cli.LogLevel).Error("failed to load config", "path", cli.Config, "error", err)
		return err
	}
	if created {
		fmt.Printf("No config found; wrote defaults to %s\n", cli.Config)
	}

	input := session.NewLinerInput()
	defer input.Close()

	sess := session.New(session.Options{
		Config:       cfg,
		Conversation: conversation.New(cfg.SystemPrompt),
		Client:       qwenclient.NewClient(qwenclient.Config{Logger: logger}),
		Store:        store.New(afero.NewOsFs(), logger),
		Input:        input,
		Logger:       logger,
	})
	return sess.Run(context.Background())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chatpal"),
		kong.Description("Companion chat bot for Qwen chat-completions endpoints"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

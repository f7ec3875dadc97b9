package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/topics"
)

//go:embed docs/*.md
var topicDocs embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Read library documentation topics",
	Long:  `Without arguments, lists the available topics. With a topic name, renders its markdown documentation for the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := topics.New(topicDocs, "docs")
		if err := manager.Load(); err != nil {
			return err
		}

		if len(args) == 0 {
			return listTopics(cmd, manager)
		}
		return showTopic(cmd, manager, args[0])
	},
}

func listTopics(cmd *cobra.Command, manager *topics.Manager) error {
	cmd.Println(formatBold("Topics:"))
	log := newLogger()
	return log.List(manager.Names(), "•")
}

func showTopic(cmd *cobra.Command, manager *topics.Manager, name string) error {
	topic, ok := manager.Get(name)
	if !ok {
		return fmt.Errorf("unknown topic %q", name)
	}

	// Plain markdown when piped; styled when on a terminal.
	var renderer topics.Renderer = topics.Plain{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		renderer = topics.Markdown{}
	}
	cmd.Print(manager.Render(topic, renderer))
	return nil
}

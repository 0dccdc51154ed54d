package main

import (
	"testing"

	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"
)

func TestIoCBuilderResolvesRootCommand(t *testing.T) {
	c := ioc.New()
	iocBuilder(c)

	var rootCmd *cobra.Command
	c.Call(func(cmd *cobra.Command) {
		rootCmd = cmd
	})
	if rootCmd == nil {
		t.Fatal("root command not resolvable")
	}

	subcommands := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		subcommands[cmd.Name()] = true
	}
	for _, name := range []string{"build", "install", "list", "clean", "version"} {
		if !subcommands[name] {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestBuildCommandFlags(t *testing.T) {
	c := ioc.New()
	iocBuilder(c)

	var rootCmd *cobra.Command
	c.Call(func(cmd *cobra.Command) {
		rootCmd = cmd
	})

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() != "build" {
			continue
		}
		for _, name := range []string{"install", "project-dir", "python", "dist-dir", "format"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("build command misses flag --%s", name)
			}
		}
		return
	}
	t.Fatal("build command not registered")
}

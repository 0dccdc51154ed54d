package main

import (
	"context"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/run"
	"github.com/spf13/cobra"

	"github.com/debman/debman/commands"
	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/artifacts"
	"github.com/debman/debman/infra/format"
	"github.com/debman/debman/infra/meta"
	"github.com/debman/debman/infra/toolchain"
)

func iocBuilder(c *ioc.Container) {
	c.Singleton(commands.NewCmdFactory)

	c.Singleton(config.NewInstall)

	c.Singleton(toolchain.NewDebianToolchain)
	c.Singleton(meta.NewReader)
	c.Singleton(artifacts.NewDirectory)

	c.Singleton(format.Resolve)
	c.SingletonNamed("table", format.NewTableFormatter)
	c.SingletonNamed("json", format.NewJSONFormatter)

	c.Singleton(commands.NewRootCommand)
	c.SingletonNamed("build", commands.NewBuildCommand)
	c.SingletonNamed("install", commands.NewInstallCommand)
	c.SingletonNamed("list", commands.NewListCommand)
	c.SingletonNamed("clean", commands.NewCleanCommand)
	c.SingletonNamed("version", commands.NewVersionCommand)
}

func main() {
	run.New().WithContainerBuilder(iocBuilder).Run(context.Background(), "debman",
		func(ctx context.Context, rootCmd *cobra.Command) error {
			return rootCmd.Execute()
		})
}

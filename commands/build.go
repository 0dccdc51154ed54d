package commands

import (
	"fmt"

	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	"github.com/debman/debman"
	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/format"
	"github.com/debman/debman/infra/types"
)

// NewBuildCommand returns new build command
func NewBuildCommand(cmdF *CmdFactory) *cobra.Command {
	var metadataF *config.MetadataFactory
	var formatF *config.FormatFactory
	buildF := &config.BuildFactory{}

	cmd := &cobra.Command{
		Short: "Builds binary Debian package from the project",
		Args:  cobra.NoArgs,
		Use:   "build [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(metadataF.Config)
			c.Singleton(formatF.Config)
			c.Singleton(buildF.Config)
		}, func(c *ioc.Container, formatter format.Formatter) error {
			var info types.BuildInfo
			var err error
			c.Call(debman.Build, &info, &err)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Format([]types.BuildInfo{info}))
			return nil
		}),
	}
	cmdF.AddLoggingFlags(cmd)
	metadataF = cmdF.AddMetadataFlags(cmd)
	formatF = cmdF.AddFormatFlags(cmd)
	cmd.Flags().BoolVarP(&buildF.Install, "install", "i", false,
		"After packaging, install the resulting artifact and repair dependencies")
	return cmd
}

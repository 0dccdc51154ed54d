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

// NewVersionCommand returns new version command
func NewVersionCommand(cmdF *CmdFactory) *cobra.Command {
	var metadataF *config.MetadataFactory
	var formatF *config.FormatFactory

	cmd := &cobra.Command{
		Short: "Prints project version and the derived release identifier",
		Args:  cobra.NoArgs,
		Use:   "version [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(metadataF.Config)
			c.Singleton(formatF.Config)
		}, func(c *ioc.Container, formatter format.Formatter) error {
			var project types.Project
			var err error
			c.Call(debman.Version, &project, &err)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Format([]types.Project{project}))
			return nil
		}),
	}
	cmdF.AddLoggingFlags(cmd)
	metadataF = cmdF.AddMetadataFlags(cmd)
	formatF = cmdF.AddFormatFlags(cmd)
	return cmd
}

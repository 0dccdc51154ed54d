package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	"github.com/debman/debman"
	"github.com/debman/debman/config"
)

// NewCleanCommand returns new clean command
func NewCleanCommand(cmdF *CmdFactory) *cobra.Command {
	var metadataF *config.MetadataFactory

	cmd := &cobra.Command{
		Short: "Removes the dist directory",
		Args:  cobra.NoArgs,
		Use:   "clean [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(metadataF.Config)
		}, func(c *ioc.Container) error {
			var err error
			c.Call(debman.Clean, &err)
			return err
		}),
	}
	cmdF.AddLoggingFlags(cmd)
	metadataF = cmdF.AddMetadataFlags(cmd)
	return cmd
}

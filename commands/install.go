package commands

import (
	"fmt"

	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	"github.com/debman/debman"
	"github.com/debman/debman/config"
)

// NewInstallCommand returns new install command
func NewInstallCommand(cmdF *CmdFactory) *cobra.Command {
	var metadataF *config.MetadataFactory

	cmd := &cobra.Command{
		Short: "Installs an already built artifact and repairs its dependencies",
		Args:  cobra.MaximumNArgs(1),
		Use:   "install [flags] [artifact]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(metadataF.Config)
		}, func(c *ioc.Container) error {
			var artifact string
			var err error
			c.Call(debman.Install, &artifact, &err)
			if err != nil {
				return err
			}
			fmt.Println(artifact)
			return nil
		}),
	}
	cmdF.AddLoggingFlags(cmd)
	metadataF = cmdF.AddMetadataFlags(cmd)
	return cmd
}

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

// NewListCommand returns new list command
func NewListCommand(cmdF *CmdFactory) *cobra.Command {
	var metadataF *config.MetadataFactory
	var formatF *config.FormatFactory

	cmd := &cobra.Command{
		Short: "Lists artifacts present in the dist directory",
		Args:  cobra.NoArgs,
		Use:   "list [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(metadataF.Config)
			c.Singleton(formatF.Config)
		}, func(c *ioc.Container, formatter format.Formatter) error {
			var artifacts []types.Artifact
			var err error
			c.Call(debman.List, &artifacts, &err)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Format(artifacts))
			return nil
		}),
	}
	cmdF.AddLoggingFlags(cmd)
	metadataF = cmdF.AddMetadataFlags(cmd)
	formatF = cmdF.AddFormatFlags(cmd)
	return cmd
}

package commands

import (
	"strings"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/logger"
	"github.com/spf13/cobra"

	"github.com/debman/debman/config"
	"github.com/debman/debman/infra/format"
)

// NewCmdFactory returns new CmdFactory.
func NewCmdFactory(c *ioc.Container) *CmdFactory {
	return &CmdFactory{
		c: c,
	}
}

// CmdFactory is a wrapper around cobra RunE.
type CmdFactory struct {
	c *ioc.Container
}

// Cmd returns function compatible with RunE.
func (f *CmdFactory) Cmd(setupFunc interface{}, cmdFunc interface{}) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f.c.Singleton(func() config.Args {
			return args
		})
		if setupFunc != nil {
			f.c.Call(setupFunc)
		}
		var err error
		f.c.Call(cmdFunc, &err)
		return err
	}
}

// AddLoggingFlags adds logging flags to command. The runtime configures the
// root logger from them when the process starts.
func (f *CmdFactory) AddLoggingFlags(cmd *cobra.Command) {
	logger.AddFlags(logger.DefaultConfig, cmd.Flags())
}

// AddMetadataFlags adds project metadata flags to command.
func (f *CmdFactory) AddMetadataFlags(cmd *cobra.Command) *config.MetadataFactory {
	metadataF := &config.MetadataFactory{}

	cmd.Flags().StringVar(&metadataF.ProjectDir, "project-dir", ".",
		"Directory containing the packaged project")
	cmd.Flags().StringVar(&metadataF.Python, "python", config.DefaultPython,
		"Python interpreter used to run the packaging toolchain")
	cmd.Flags().StringVar(&metadataF.DistDir, "dist-dir", config.DefaultDistDir,
		"Directory, relative to project dir, where the build tool deposits artifacts")

	return metadataF
}

// AddFormatFlags adds formatting flags to command.
func (f *CmdFactory) AddFormatFlags(cmd *cobra.Command) *config.FormatFactory {
	formatF := &config.FormatFactory{}

	cmd.Flags().StringVar(&formatF.Formatter, "format", "table",
		"Name of formatter used to format the output: "+strings.Join(f.c.Names((*format.Formatter)(nil)), " | "))

	return formatF
}

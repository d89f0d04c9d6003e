package version

import (
	"fmt"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/jenkins-x/jx-strutil/pkg/version"
	"github.com/spf13/cobra"
)

// Options the options for the version command
type Options struct {
	*opts.CommonOptions

	Quiet bool
}

// NewCmdVersion creates a command object for the "version" command
func NewCmdVersion(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &Options{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Displays the version of this command",
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false, "uses the quiet format of just outputting the version number only")
	return cmd
}

// Run implements the command
func (o *Options) Run() error {
	v := version.StringDefault(version.GetVersion())
	if o.Quiet {
		_, err := fmt.Fprintln(o.Out, v)
		return err
	}
	log.Logger().Debugf("revision %s", version.GetRevision())
	_, err := fmt.Fprintf(o.Out, "version: %s\n", log.ColorInfo(v))
	return err
}

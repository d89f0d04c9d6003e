package text

import (
	"fmt"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// BlankOptions the options for the blank command
type BlankOptions struct {
	*opts.CommonOptions
}

// NewCmdBlank creates the blank command
func NewCmdBlank(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &BlankOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "blank <text>",
		Short:   "Prints true if the text is empty or only whitespace",
		Example: `  strutil blank "   "`,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	return cmd
}

// Run implements the command
func (o *BlankOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	_, err := fmt.Fprintln(o.Out, util.BoolToString(util.IsBlank(o.Args[0])))
	return err
}

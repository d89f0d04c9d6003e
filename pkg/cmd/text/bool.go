package text

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var (
	boolLong = heredoc.Doc(`
		Coerces the value to a boolean and prints it as the literal true or false.

		Accepted values are those understood by strconv.ParseBool, such as 1, t, TRUE, 0, f or False.
	`)

	boolExample = heredoc.Doc(`
		strutil bool 1
		strutil bool False
	`)
)

// BoolOptions the options for the bool command
type BoolOptions struct {
	*opts.CommonOptions
}

// NewCmdBool creates the bool command
func NewCmdBool(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &BoolOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "bool <value>",
		Short:   "Prints a value as the literal true or false",
		Long:    boolLong,
		Example: boolExample,
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
func (o *BoolOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one value argument but got %d", len(o.Args))
	}
	value, err := cast.ToBoolE(util.Trim(o.Args[0]))
	if err != nil {
		return errors.Wrapf(err, "failed to convert '%s' to a boolean", o.Args[0])
	}
	_, err = fmt.Fprintln(o.Out, util.BoolToString(value))
	return err
}

package text

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	trimLong = heredoc.Doc(`
		Removes leading and trailing ASCII whitespace (space, tab, CR, LF, vertical tab and form feed).

		The result is printed as a quoted Go string so that any remaining whitespace is visible.
	`)

	trimExample = heredoc.Doc(`
		# trim both ends
		strutil trim "   Hello World  "

		# only trim the start
		strutil trim --left "   Hello World  "
	`)
)

// TrimOptions the options for the trim command
type TrimOptions struct {
	*opts.CommonOptions

	Left  bool
	Right bool
}

// NewCmdTrim creates the trim command
func NewCmdTrim(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &TrimOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "trim <text>",
		Short:   "Removes leading and trailing whitespace",
		Long:    trimLong,
		Example: trimExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().BoolVarP(&o.Left, "left", "l", false, "only trims the start of the text")
	cmd.Flags().BoolVarP(&o.Right, "right", "r", false, "only trims the end of the text")
	return cmd
}

// Run implements the command
func (o *TrimOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	if o.Left && o.Right {
		return errors.New("--left and --right cannot be used together, omit both to trim both ends")
	}
	text := o.Args[0]
	var result string
	switch {
	case o.Left:
		result = util.TrimLeft(text)
	case o.Right:
		result = util.TrimRight(text)
	default:
		result = util.Trim(text)
	}
	log.Logger().Debugf("trimmed %d bytes", len(text)-len(result))
	_, err := fmt.Fprintf(o.Out, "%q\n", result)
	return err
}

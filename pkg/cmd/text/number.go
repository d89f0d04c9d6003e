package text

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	numberLong = heredoc.Doc(`
		Prints true if the whole text is a number of the given type.

		Leading whitespace is skipped unless --strict is given, in which case any whitespace makes the text invalid.
		Trailing characters, including whitespace, always make the text invalid. The value must fit in the type.
	`)

	numberExample = heredoc.Doc(`
		# prints true
		strutil number --strict -- -45.67

		# prints false as 300 does not fit in an int8
		strutil number --type int8 300
	`)
)

// NumberOptions the options for the number command
type NumberOptions struct {
	*opts.CommonOptions

	Type   string
	Strict bool
}

// NewCmdNumber creates the number command
func NewCmdNumber(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &NumberOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "number <text>",
		Short:   "Prints true if the text is a number",
		Long:    numberLong,
		Example: numberExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().StringVarP(&o.Type, "type", "t", "float64", "the numeric type: "+strings.Join(util.NumberKindNames(), ", "))
	cmd.Flags().BoolVarP(&o.Strict, "strict", "s", false, "rejects any whitespace in the text")
	return cmd
}

// Run implements the command
func (o *NumberOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	isNumber := util.NumberKinds[o.Type]
	if isNumber == nil {
		return errors.Errorf("unknown numeric type '%s', must be one of %s", o.Type, strings.Join(util.NumberKindNames(), ", "))
	}
	log.Logger().Debugf("checking %q is a %s with strict=%s", o.Args[0], o.Type, util.BoolToString(o.Strict))
	_, err := fmt.Fprintln(o.Out, util.BoolToString(isNumber(o.Args[0], o.Strict)))
	return err
}

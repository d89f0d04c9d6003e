package text

import (
	"fmt"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// AffixOptions the options for the starts-with and ends-with commands
type AffixOptions struct {
	*opts.CommonOptions

	Match func(text string, affix string) bool
}

// NewCmdStartsWith creates the starts-with command
func NewCmdStartsWith(commonOpts *opts.CommonOptions) *cobra.Command {
	return newCmdAffix(commonOpts, "starts-with <text> <prefix>", "Prints true if the text begins with the prefix", util.StartsWith)
}

// NewCmdEndsWith creates the ends-with command
func NewCmdEndsWith(commonOpts *opts.CommonOptions) *cobra.Command {
	return newCmdAffix(commonOpts, "ends-with <text> <suffix>", "Prints true if the text finishes with the suffix", util.EndsWith)
}

func newCmdAffix(commonOpts *opts.CommonOptions, use string, short string, match func(string, string) bool) *cobra.Command {
	o := &AffixOptions{
		CommonOptions: commonOpts,
		Match:         match,
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	return cmd
}

// Run implements the command
func (o *AffixOptions) Run() error {
	if len(o.Args) != 2 {
		return errors.Errorf("expected text and affix arguments but got %d arguments", len(o.Args))
	}
	_, err := fmt.Fprintln(o.Out, util.BoolToString(o.Match(o.Args[0], o.Args[1])))
	return err
}

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
	replaceLong = heredoc.Doc(`
		Replaces every non-overlapping occurrence of one substring with another, scanning left to right.

		Occurrences created by the replacement itself are not replaced again. An empty --from leaves the text unchanged.
	`)

	replaceExample = heredoc.Doc(`
		strutil replace --from apples --to oranges "I like apples and apples are good"
	`)
)

// ReplaceOptions the options for the replace command
type ReplaceOptions struct {
	*opts.CommonOptions

	From string
	To   string
}

// NewCmdReplace creates the replace command
func NewCmdReplace(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &ReplaceOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "replace <text>",
		Short:   "Replaces every occurrence of a substring",
		Long:    replaceLong,
		Example: replaceExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().StringVarP(&o.From, "from", "f", "", "the substring to search for")
	cmd.Flags().StringVarP(&o.To, "to", "t", "", "the replacement")
	return cmd
}

// Run implements the command
func (o *ReplaceOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	if o.From == "" {
		log.Logger().Warnf("no --from given so the text is unchanged")
	}
	_, err := fmt.Fprintln(o.Out, util.Replace(o.Args[0], o.From, o.To))
	return err
}

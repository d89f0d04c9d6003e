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
	splitLong = heredoc.Doc(`
		Splits the text on every occurrence of the delimiter and prints each part as a quoted string on its own line.

		Adjacent delimiters give empty parts. Empty text gives a single empty part.
	`)

	splitExample = heredoc.Doc(`
		strutil split --delimiter , apple,banana,cherry
	`)
)

// SplitOptions the options for the split command
type SplitOptions struct {
	*opts.CommonOptions

	Delimiter string
}

// NewCmdSplit creates the split command
func NewCmdSplit(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &SplitOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "split <text>",
		Short:   "Splits text on a delimiter",
		Long:    splitLong,
		Example: splitExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().StringVarP(&o.Delimiter, "delimiter", "d", ",", "the delimiter to split on")
	return cmd
}

// Run implements the command
func (o *SplitOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	parts, err := util.Split(o.Args[0], o.Delimiter)
	if err != nil {
		return errors.Wrap(err, "failed to split text")
	}
	log.Logger().Debugf("split into %d parts", len(parts))
	for _, part := range parts {
		if _, err := fmt.Fprintf(o.Out, "%q\n", part); err != nil {
			return err
		}
	}
	return nil
}

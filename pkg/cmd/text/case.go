package text

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/helper"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"
)

var (
	caseLong = heredoc.Doc(`
		Converts the case of the text.

		The lower and upper styles only map the ASCII letters, any other byte is left unchanged.
		The snake, kebab, camel and upper-camel styles rewrite the text as an identifier.
	`)

	caseExample = heredoc.Doc(`
		strutil case --to upper "Hello World"
		strutil case --to snake "Hello World"
	`)
)

// caseStyles maps each --to value onto its conversion
var caseStyles = map[string]func(string) string{
	"lower":       util.ToLower,
	"upper":       util.ToUpper,
	"snake":       strcase.SnakeCase,
	"kebab":       strcase.KebabCase,
	"camel":       strcase.LowerCamelCase,
	"upper-camel": strcase.UpperCamelCase,
}

// CaseOptions the options for the case command
type CaseOptions struct {
	*opts.CommonOptions

	To string
}

// NewCmdCase creates the case command
func NewCmdCase(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &CaseOptions{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:     "case <text>",
		Short:   "Converts the case of text",
		Long:    caseLong,
		Example: caseExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().StringVarP(&o.To, "to", "t", "lower", "the style to convert to: "+strings.Join(CaseStyleNames(), ", "))
	return cmd
}

// CaseStyleNames returns the supported --to values
func CaseStyleNames() []string {
	return []string{"lower", "upper", "snake", "kebab", "camel", "upper-camel"}
}

// Run implements the command
func (o *CaseOptions) Run() error {
	if len(o.Args) != 1 {
		return errors.Errorf("expected exactly one text argument but got %d", len(o.Args))
	}
	fn := caseStyles[util.ToLower(util.Trim(o.To))]
	if fn == nil {
		return errors.Errorf("unknown case style '%s', must be one of %s", o.To, strings.Join(CaseStyleNames(), ", "))
	}
	_, err := fmt.Fprintln(o.Out, fn(o.Args[0]))
	return err
}

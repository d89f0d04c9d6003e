package demo

import (
	"fmt"
	"io"
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
	demoLong = heredoc.Doc(`
		Runs every text helper against a fixed set of sample inputs and prints the results.
	`)

	// NumberSamples are checked with strict float64 parsing
	NumberSamples = []string{"+", ".123", "-45.67 ", " +0.5", "1", "12.34.56", "12a.34", " 2"}
)

const (
	trimSample    = "     Hello World  "
	splitSample   = "apple,banana,cherry"
	caseSample    = "Hello World"
	replaceSample = "I like apples and apples are good"
	blankSample   = "   "
)

// Options the options for the demo command
type Options struct {
	*opts.CommonOptions

	NoColor bool
}

// NewCmdDemo creates the demo command
func NewCmdDemo(commonOpts *opts.CommonOptions) *cobra.Command {
	o := &Options{
		CommonOptions: commonOpts,
	}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Shows every text helper on sample inputs",
		Long:  demoLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			o.SetCommand(cmd, args)
			err := o.Run()
			helper.CheckErr(err)
		},
	}
	cmd.Flags().BoolVarP(&o.NoColor, "no-color", "", false, "disables coloured true/false results")
	return cmd
}

// Run implements the command
func (o *Options) Run() error {
	if o.NoColor {
		log.DisableColor()
	}
	p := &printer{out: o.Out, colorBool: o.colorBool}
	o.numbers(p)
	if err := o.others(p); err != nil {
		return err
	}
	return p.err
}

func (o *Options) colorBool(value bool) string {
	text := util.BoolToString(value)
	if o.NoColor {
		return text
	}
	if value {
		return log.ColorInfo(text)
	}
	return log.ColorError(text)
}

func (o *Options) numbers(p *printer) {
	p.printf("Testing isNumber[float64] in strict mode:\n")
	for _, sample := range NumberSamples {
		p.printf("'%s' -> %s\n", sample, p.colorBool(util.IsNumber[float64](sample, true)))
	}
	p.printf("\n")
}

func (o *Options) others(p *printer) error {
	p.printf("Testing other functions:\n")

	p.printf("before trim: %s\n", trimSample)
	p.printf("after trim: %s\n", util.Trim(trimSample))

	parts, err := util.Split(splitSample, ",")
	if err != nil {
		return errors.Wrapf(err, "failed to split %s", splitSample)
	}
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		quoted = append(quoted, "'"+part+"'")
	}
	p.printf("Split: '%s' -> %s\n", splitSample, strings.Join(quoted, " "))

	p.printf("startsWith 'Hello': %s\n", p.colorBool(util.StartsWith(caseSample, "Hello")))
	p.printf("endsWith 'World': %s\n", p.colorBool(util.EndsWith(caseSample, "World")))

	p.printf("toLower: '%s' -> '%s'\n", caseSample, util.ToLower(caseSample))
	p.printf("toUpper: '%s' -> '%s'\n", caseSample, util.ToUpper(caseSample))

	p.printf("isBlank: '%s' -> %s\n", blankSample, p.colorBool(util.IsBlank(blankSample)))

	p.printf("Replace: '%s' -> '%s'\n", replaceSample, util.Replace(replaceSample, "apples", "oranges"))
	return nil
}

// printer remembers the first write error so the sample listing reads top to bottom
type printer struct {
	out       io.Writer
	err       error
	colorBool func(bool) string
}

func (p *printer) printf(format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, a...)
}

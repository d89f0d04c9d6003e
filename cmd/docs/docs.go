package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jenkins-x/jx-strutil/pkg/cmd"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/jenkins-x/jx-strutil/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

const descriptionSourcePath = "docs/reference/cmd/"

type options struct {
	source string
	target string
	kind   string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	cwd, _ := os.Getwd()
	flags := pflag.NewFlagSet("docs", pflag.ContinueOnError)
	flags.StringVar(&opts.source, "root", cwd, "Path to project root")
	flags.StringVar(&opts.target, "target", "/tmp", "Target path for generated files")
	flags.StringVar(&opts.kind, "kind", "markdown", "Kind of docs to generate (supported: man, markdown)")
	err := flags.Parse(args)
	return opts, err
}

func generateDocs(opts *options) error {
	root := cmd.Main()
	disableFlagsInUseLine(root)
	source := filepath.Join(opts.source, descriptionSourcePath)
	if err := loadLongDescription(root, source); err != nil {
		return err
	}

	switch util.ToLower(opts.kind) {
	case "markdown":
		return doc.GenMarkdownTree(root, opts.target)
	case "man":
		header := &doc.GenManHeader{
			Title:   "STRUTIL",
			Section: "1",
		}
		return doc.GenManTree(root, header, opts.target)
	default:
		return errors.Errorf("invalid docs kind: %s", opts.kind)
	}
}

func disableFlagsInUseLine(cmd *cobra.Command) {
	visitAll(cmd, func(ccmd *cobra.Command) {
		// do not add a `[flags]` to the end of the usage line.
		ccmd.DisableFlagsInUseLine = true
	})
}

// visitAll traverses every command from the root, parents last
func visitAll(root *cobra.Command, fn func(*cobra.Command)) {
	for _, c := range root.Commands() {
		visitAll(c, fn)
	}
	fn(root)
}

// loadLongDescription overrides Long and Example of each command with the
// Description and Examples sections of its markdown file, if one exists
func loadLongDescription(cmd *cobra.Command, path ...string) error {
	for _, c := range cmd.Commands() {
		if c.Name() == "" {
			continue
		}
		fullpath := filepath.Join(path[0], strings.Join(append(path[1:], c.Name()), "_")+".md")
		if c.HasSubCommands() {
			if err := loadLongDescription(c, append(path, c.Name())...); err != nil {
				return err
			}
		}

		if _, err := os.Stat(fullpath); err != nil {
			log.Logger().Debugf("%s does not exist, skipping", fullpath)
			continue
		}

		content, err := os.ReadFile(fullpath)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", fullpath)
		}
		description, examples, err := parseMDContent(string(content))
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", fullpath)
		}
		c.Long = description
		c.Example = examples
	}
	return nil
}

func parseMDContent(mdString string) (description, examples string, err error) {
	sections, err := util.Split(mdString, "\n## ")
	if err != nil {
		return "", "", err
	}
	for _, s := range sections {
		s = util.TrimLeft(util.Replace(s, "\r\n", "\n"))
		if util.StartsWith(s, "## ") {
			s = s[len("## "):]
		}
		if util.StartsWith(s, "Description") {
			description = util.Trim(strings.TrimPrefix(s, "Description"))
		}
		if util.StartsWith(s, "Examples") {
			examples = util.Trim(strings.TrimPrefix(s, "Examples"))
		}
	}
	return description, examples, nil
}

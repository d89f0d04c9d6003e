package cmd

import (
	"strings"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/demo"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/text"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/version"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables that override persistent flags
	EnvPrefix = "STRUTIL"

	optionLogLevel  = "log-level"
	optionLogFormat = "log-format"
)

// Main creates the strutil root command
func Main() *cobra.Command {
	return NewCmdStrutil(viper.New(), opts.NewCommonOptions())
}

// NewCmdStrutil creates the root command using the given viper instance to resolve persistent flags
func NewCmdStrutil(v *viper.Viper, commonOpts *opts.CommonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "strutil",
		Short:        "ASCII text helpers: trim, split, case, replace and numeric checks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(v)
		},
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				log.Logger().Errorf(err.Error())
			}
		},
	}
	cmd.PersistentFlags().String(optionLogLevel, "info", "the logging level: "+strings.Join(log.GetLevels(), ", "))
	cmd.PersistentFlags().String(optionLogFormat, "text", "the logging layout: text or json")
	configureViper(v)
	_ = v.BindPFlag(optionLogLevel, cmd.PersistentFlags().Lookup(optionLogLevel))
	_ = v.BindPFlag(optionLogFormat, cmd.PersistentFlags().Lookup(optionLogFormat))

	cmd.AddCommand(demo.NewCmdDemo(commonOpts))
	cmd.AddCommand(text.NewCmdTrim(commonOpts))
	cmd.AddCommand(text.NewCmdSplit(commonOpts))
	cmd.AddCommand(text.NewCmdCase(commonOpts))
	cmd.AddCommand(text.NewCmdReplace(commonOpts))
	cmd.AddCommand(text.NewCmdBlank(commonOpts))
	cmd.AddCommand(text.NewCmdBool(commonOpts))
	cmd.AddCommand(text.NewCmdStartsWith(commonOpts))
	cmd.AddCommand(text.NewCmdEndsWith(commonOpts))
	cmd.AddCommand(text.NewCmdNumber(commonOpts))
	cmd.AddCommand(version.NewCmdVersion(commonOpts))
	return cmd
}

func configureViper(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func configureLogging(v *viper.Viper) error {
	if err := log.SetFormat(v.GetString(optionLogFormat)); err != nil {
		return errors.Wrapf(err, "invalid --%s", optionLogFormat)
	}
	if err := log.SetLevel(v.GetString(optionLogLevel)); err != nil {
		return errors.Wrapf(err, "invalid --%s", optionLogLevel)
	}
	return nil
}

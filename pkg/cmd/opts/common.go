package opts

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CommonOptions contains the options shared by every strutil command
type CommonOptions struct {
	Cmd  *cobra.Command
	Args []string
	In   io.Reader
	Out  io.Writer
	Err  io.Writer
}

// NewCommonOptions creates options writing to the standard streams
func NewCommonOptions() *CommonOptions {
	return &CommonOptions{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// SetCommand remembers the cobra command and args being run. The command's output
// writer is used if it has been overridden, such as in tests.
func (o *CommonOptions) SetCommand(cmd *cobra.Command, args []string) {
	o.Cmd = cmd
	o.Args = args
	o.Out = cmd.OutOrStdout()
	o.Err = cmd.ErrOrStderr()
}

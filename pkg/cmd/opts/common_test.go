package opts_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSetCommandUsesCommandWriters(t *testing.T) {
	o := opts.NewCommonOptions()
	assert.Equal(t, os.Stdout, o.Out)

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)
	o.SetCommand(cmd, []string{"a", "b"})

	assert.Equal(t, &out, o.Out)
	assert.Equal(t, []string{"a", "b"}, o.Args)
	assert.Equal(t, cmd, o.Cmd)
}

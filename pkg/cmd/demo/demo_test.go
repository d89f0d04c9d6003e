package demo_test

import (
	"bytes"
	"testing"

	"github.com/jenkins-x/jx-strutil/pkg/cmd/demo"
	"github.com/jenkins-x/jx-strutil/pkg/cmd/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoOutput(t *testing.T) {
	var out bytes.Buffer
	o := &demo.Options{
		CommonOptions: &opts.CommonOptions{Out: &out},
		NoColor:       true,
	}
	err := o.Run()
	require.NoError(t, err)

	expected := "Testing isNumber[float64] in strict mode:\n" +
		"'+' -> false\n" +
		"'.123' -> true\n" +
		"'-45.67 ' -> false\n" +
		"' +0.5' -> false\n" +
		"'1' -> true\n" +
		"'12.34.56' -> false\n" +
		"'12a.34' -> false\n" +
		"' 2' -> false\n" +
		"\n" +
		"Testing other functions:\n" +
		"before trim:      Hello World  \n" +
		"after trim: Hello World\n" +
		"Split: 'apple,banana,cherry' -> 'apple' 'banana' 'cherry'\n" +
		"startsWith 'Hello': true\n" +
		"endsWith 'World': true\n" +
		"toLower: 'Hello World' -> 'hello world'\n" +
		"toUpper: 'Hello World' -> 'HELLO WORLD'\n" +
		"isBlank: '   ' -> true\n" +
		"Replace: 'I like apples and apples are good' -> 'I like oranges and oranges are good'\n"
	assert.Equal(t, expected, out.String())
}

func TestNewCmdDemo(t *testing.T) {
	var out bytes.Buffer
	cmd := demo.NewCmdDemo(opts.NewCommonOptions())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-color"})
	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "'1' -> true")
}

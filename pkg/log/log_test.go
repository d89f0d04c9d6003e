package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_debug_log_is_written_to_output_when_corresponding_level_is_set(t *testing.T) {
	DisableColor()
	err := SetLevel("info")
	assert.NoError(t, err)

	out := CaptureOutput(func() { Logger().Debug("hello") })
	assert.Empty(t, out)

	err = SetLevel("debug")
	assert.NoError(t, err)

	out = CaptureOutput(func() { Logger().Debug("hello") })
	assert.Equal(t, "DEBUG: hello\n", out)

	assert.NoError(t, SetLevel("info"))
}

func Test_info_log_has_no_level_prefix(t *testing.T) {
	DisableColor()
	assert.NoError(t, SetLevel("info"))

	out := CaptureOutput(func() { Logger().Info("hello") })
	assert.Equal(t, "hello\n", out)
}

func Test_setting_unknown_log_level_returns_error(t *testing.T) {
	err := SetLevel("foo")
	assert.Error(t, err)
	assert.Equal(t, "Invalid log level 'foo'", err.Error())
}

func Test_get_levels_lists_every_logrus_level(t *testing.T) {
	levels := GetLevels()
	assert.Len(t, levels, len(logrus.AllLevels))
	assert.Contains(t, levels, "debug")
}

func Test_json_format_can_be_selected(t *testing.T) {
	assert.NoError(t, SetLevel("info"))
	assert.NoError(t, SetFormat("json"))
	defer func() { assert.NoError(t, SetFormat("text")) }()

	out := CaptureOutput(func() { Logger().Info("hello") })
	assert.Contains(t, out, `"msg":"hello"`)
}

func Test_setting_unknown_log_format_returns_error(t *testing.T) {
	err := SetFormat("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid log format 'xml'")
}

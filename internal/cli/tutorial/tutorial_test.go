package tutorial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorialCmd_Raw(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--raw"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, tutorialContent, out.String())
}

func TestTutorialCmd_Rendered(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Snapshots")
}

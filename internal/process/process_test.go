package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunEmptyArgv(t *testing.T) {
	assert.Error(t, Run(nil))
	assert.Error(t, Run([]string{}))
}

func TestRunMissingBinary(t *testing.T) {
	err := Run([]string{"sshcm-test-binary-that-does-not-exist"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	assert.NoError(t, Run([]string{"true"}))
	assert.Error(t, Run([]string{"false"}))
}

func TestIsInstalled(t *testing.T) {
	assert.True(t, IsInstalled("sh"))
	assert.False(t, IsInstalled("sshcm-test-binary-that-does-not-exist"))
}

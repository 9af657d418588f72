package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogs(t *testing.T) {
	assert.Equal(t, os.Stdout, setupLogs(false))

	orig := buildType
	defer func() { buildType = orig }()
	buildType = "debug"
	assert.Equal(t, os.Stdout, setupLogs(false))
}

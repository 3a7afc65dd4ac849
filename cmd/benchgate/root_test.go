package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestExecute_UnknownCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	t.Cleanup(func() { exit = oldExit; rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"definitely-not-a-command"})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	Execute()
	assert.Equal(t, 1, exitCode)
}

func TestExecute_MissingResults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir()) // no target/criterion here

	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	t.Cleanup(func() { exit = oldExit; rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"analyze"})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	Execute()
	assert.Equal(t, 1, exitCode)
}

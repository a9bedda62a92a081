package commands

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestExecuteWrapperSuccess(t *testing.T) {
	old := rootCmd
	rootCmd = &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	defer func() { rootCmd = old }()

	// Should not call os.Exit for successful execution
	Execute()
}

func TestRootCmdGlobal(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("global rootCmd should not be nil")
	}
	for _, name := range []string{"simulate", "models", "config"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("rootCmd should have the %s subcommand", name)
		}
	}
}

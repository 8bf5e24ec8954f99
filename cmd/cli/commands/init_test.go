package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scenarioCSV = "Name,Score,Cost\nA,80,10\nB,60,5\nC,90,20\n"

const scenarioConfig = `
idColumn: "Name"
criteria:
  - name: "Score"
    weight: 3
    kind: "Benefit"
  - name: "Cost"
    weight: 2
    kind: "Cost"
budget: 1000000
mode: "optimal"
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// testApp returns an app reading the scenario config from a temp dir
func testApp(t *testing.T) (*AppContext, string) {
	t.Helper()
	dir := t.TempDir()
	return &AppContext{
		ConfigPath: writeFile(t, dir, "allocator_config.yaml", scenarioConfig),
		Logger:     zap.NewNop(),
		Ctx:        context.Background(),
	}, dir
}

// execute runs cmd under a bare root command and returns its output
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "allocator", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err := root.Execute()
	return out.String(), err
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/configmaster/configmaster/internal/cli/wizard"
	"github.com/configmaster/configmaster/internal/greeting"
	"github.com/configmaster/configmaster/internal/i18n"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/ui"
)

// testEnv is a fake environment for config.ApplyEnv.
type testEnv map[string]string

func (e testEnv) lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// cliResult captures one in-process command run.
type cliResult struct {
	stdout string
	stderr string
	logs   string
	err    error
}

func newTestDeps(env testEnv) (*Dependencies, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	headless := ui.NewHeadlessManager()
	headless.ForceHeadless(true)
	return &Dependencies{
		Catalog:   i18n.Default(),
		Templates: template.Default(),
		LogOutput: logs,
		LookupEnv: env.lookup,
		Headless:  headless,
		RunWizard: func([]wizard.Question) (*wizard.Result, error) {
			panic("wizard must not run in this test")
		},
		ResolverOptions: []greeting.Option{greeting.WithAsyncDelay(time.Millisecond)},
	}, logs
}

func runCLIContext(ctx context.Context, d *Dependencies, logs *bytes.Buffer, args ...string) cliResult {
	root := NewRootCmd(d)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), logs: logs.String(), err: err}
}

func runCLI(t *testing.T, env testEnv, args ...string) cliResult {
	t.Helper()
	d, logs := newTestDeps(env)
	return runCLIContext(context.Background(), d, logs, args...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

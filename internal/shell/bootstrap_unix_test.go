//go:build linux || darwin

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0xMasayoshi/sumo/internal/daemon"
	"github.com/0xMasayoshi/sumo/internal/menu"
)

// installFakeDaemon places a script at the platform binary path under a fresh
// install directory. The script records its arguments.
func installFakeDaemon(t *testing.T) (installDir, argsFile string) {
	t.Helper()

	installDir = t.TempDir()
	argsFile = filepath.Join(t.TempDir(), "args.txt")
	bin := filepath.Join(installDir, filepath.FromSlash(daemon.BinaryPath()))
	require.NoError(t, os.MkdirAll(filepath.Dir(bin), 0o755))

	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"$SUMO_TEST_ARGS.tmp\"\nmv \"$SUMO_TEST_ARGS.tmp\" \"$SUMO_TEST_ARGS\"\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	t.Setenv("SUMO_TEST_ARGS", argsFile)
	return installDir, argsFile
}

func TestBootstrapStartsRealDaemon(t *testing.T) {
	installDir, argsFile := installFakeDaemon(t)

	rec := &recorder{}
	host := &fakeHost{rec: rec}
	abouts := 0
	router := menu.NewRouter(menu.Handlers{About: func() { abouts++ }}, zap.NewNop())
	sup := daemon.NewSupervisor(daemon.DefaultLaunchSpec(installDir), zap.NewNop())

	require.NoError(t, Bootstrap(host, sup, router, zap.NewNop()))

	var data []byte
	require.Eventually(t, func() bool {
		var err error
		data, err = os.ReadFile(argsFile)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"--port", "5040", "--profile", ".sumo"}, strings.Split(strings.TrimSpace(string(data)), "\n"))

	require.NotNil(t, host.installed)
	assert.Len(t, host.installed.Submenus, 2)

	host.listener(menu.Event{ID: "about_sumo"})
	assert.Equal(t, 1, abouts)
}

func TestBootstrapMissingDaemonBinary(t *testing.T) {
	rec := &recorder{}
	host := &fakeHost{rec: rec}
	sup := daemon.NewSupervisor(daemon.DefaultLaunchSpec(t.TempDir()), zap.NewNop())

	err := Bootstrap(host, sup, menu.NewRouter(menu.Handlers{}, nil), nil)

	var spawnErr *daemon.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, host.listener, "router must not go live without the daemon")
}

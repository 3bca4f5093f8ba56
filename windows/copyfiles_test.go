package windows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestCopyFilesSourceDisksFilesX86(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()

	err := os.Mkdir(filepath.Join(source, "I386"), 0o755)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(source, "I386", "NETDRV.SYS"), []byte("i386"), 0o644)
	require.NoError(t, err)

	r, _ := newTestResolver(t, `[Drv.CopyFiles]
netdrv.sys
[SourceDisksFiles.x86]
NetDrv.sys = 1,,i386
`, Options{SourceDir: source, TargetDir: target})

	var sys sysFiles
	r.copyFiles("Drv.CopyFiles", &sys)
	require.Equal(t, "netdrv.sys", sys.String())

	content, err := os.ReadFile(filepath.Join(target, "netdrv.sys"))
	require.NoError(t, err)
	require.Equal(t, "i386", string(content))
}

func TestCopyFilesSectionStop(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()

	for _, name := range []string{"first.sys", "last.sys"} {
		err := os.WriteFile(filepath.Join(source, name), []byte(name), 0o644)
		require.NoError(t, err)
	}

	doc := &Document{Sections: []*Section{
		{Name: "Files", Lines: []string{"first.sys", "[Next]", "last.sys"}},
	}}

	logger, _ := test.NewNullLogger()
	r := NewResolver(doc, Options{SourceDir: source, TargetDir: target}, logger)

	var sys sysFiles
	r.copyFiles("Files, @missing.sys", &sys)
	require.Equal(t, "first.sys", sys.String())
	require.FileExists(t, filepath.Join(target, "first.sys"))
	require.NoFileExists(t, filepath.Join(target, "last.sys"))
}

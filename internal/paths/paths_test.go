package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout_CandidateOrder(t *testing.T) {
	root := "/pkg"
	candidates := DefaultLayout().Candidates(root)

	expected := []string{
		"/pkg/build/core2dump",
		"/pkg/build/core2dump.exe",
		"/pkg/build/Release/core2dump",
		"/pkg/build/Release/core2dump.exe",
		"/pkg/build/Debug/core2dump",
		"/pkg/build/Debug/core2dump.exe",
		"/pkg/out/Release/core2dump",
		"/pkg/out/Release/core2dump.exe",
		"/pkg/out/Debug/core2dump",
		"/pkg/out/Debug/core2dump.exe",
		"/pkg/build/default/core2dump",
		"/pkg/build/default/core2dump.exe",
	}

	got := make([]string, 0, len(candidates))
	for _, c := range candidates {
		got = append(got, c.Path)
	}
	assert.Equal(t, expected, got)
}

func TestLayout_PublishTarget(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, "/pkg/npm", l.PublishDir("/pkg"))
	assert.Equal(t, "/pkg/npm/core2dump", l.PublishTarget("/pkg", "core2dump"))
	assert.Equal(t, "/pkg/npm/core2dump.exe", l.PublishTarget("/pkg", "core2dump.exe"))
}

func TestNewLayout_CopiesInput(t *testing.T) {
	dirs := [][]string{{"bin"}}
	names := []string{"tool"}
	l := NewLayout(dirs, names, []string{"dist"})

	dirs[0][0] = "changed"
	names[0] = "changed"

	assert.Equal(t, [][]string{{"bin"}}, l.Dirs())
	assert.Equal(t, []string{"tool"}, l.Names())

	// Accessors hand out copies too
	l.Dirs()[0][0] = "mutated"
	l.Names()[0] = "mutated"
	assert.Equal(t, "/r/bin/tool", l.Candidates("/r")[0].Path)
}

func TestLayout_EmptyLayout(t *testing.T) {
	l := NewLayout(nil, nil, nil)
	assert.Empty(t, l.Candidates("/r"))
	assert.Equal(t, "/r", l.PublishDir("/r"))
}

func TestSearchRootFromExecutable(t *testing.T) {
	root := t.TempDir()
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	binDir := filepath.Join(root, "npm")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	exe := filepath.Join(binDir, "locate")
	require.NoError(t, os.WriteFile(exe, []byte{}, 0755))

	t.Run("direct path", func(t *testing.T) {
		got, err := SearchRootFromExecutable(exe)
		require.NoError(t, err)
		assert.Equal(t, realRoot, got)
	})

	t.Run("through symlink", func(t *testing.T) {
		linkDir := filepath.Join(t.TempDir(), "bin")
		require.NoError(t, os.MkdirAll(linkDir, 0755))
		link := filepath.Join(linkDir, "locate")
		require.NoError(t, os.Symlink(exe, link))

		got, err := SearchRootFromExecutable(link)
		require.NoError(t, err)
		assert.Equal(t, realRoot, got)
	})

	t.Run("missing executable", func(t *testing.T) {
		_, err := SearchRootFromExecutable(filepath.Join(root, "nope", "locate"))
		assert.Error(t, err)
	})
}

func TestResolveSearchRoot(t *testing.T) {
	got, err := ResolveSearchRoot()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestNormalizeRoot(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "absolute", input: "/pkg/./core", want: "/pkg/core"},
		{name: "relative", input: "sub", want: filepath.Join(cwd, "sub")},
		{name: "empty", input: "", wantErr: true},
		{name: "null byte", input: "/pkg\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRoot(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/calwe/ocr-interpretor/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// basePrefix returns the directory name used under the user config and cache
// roots. It is derived from the executable name so renamed binaries keep their
// state separate, with [pkg.Name] as the fallback.
var basePrefix = sync.OnceValue(func() string {
	id := os.Args[0]
	if exe, err := os.Executable(); err == nil {
		id = exe
	}

	id = filepath.Base(id)
	id = strings.TrimSuffix(id, filepath.Ext(id))
	id = strings.TrimLeft(id, ".")

	if id == "" {
		return pkg.Name
	}

	return id
})

// userDir resolves a per-user base directory, falling back to a dot directory
// under the home directory and finally the working directory.
func userDir(resolve func() (string, error), dot string) string {
	if dir, err := resolve(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, dot)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserConfigDir, ".config"), basePrefix())
})

// cacheDir returns the cache directory path used for transient files such as
// REPL history and profiling output.
var cacheDir = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserCacheDir, ".cache"), basePrefix())
})

// configPath joins path elements onto the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	if err := os.MkdirAll(configDir(), defaultDirMode); err != nil {
		return err
	}

	return os.MkdirAll(cacheDir(), defaultDirMode)
}

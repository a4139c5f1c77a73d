package calcconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapecalc/cmds"
	"github.com/reusee/tapecalc/configs"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/modes"
)

//go:embed schema.cue
var schema string

var configFlags = cmds.Collect[string]("-config", "load a config file before the searched ones")

// ConfigFiles are loaded before any file found by searching.
type ConfigFiles []string

func (Module) ConfigFiles() ConfigFiles {
	return *configFlags
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
	files ConfigFiles,
) configs.Loader {

	paths := append([]string(nil), files...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if mode == modes.ModeDevelopment {
		// no ambient config files in tests
		return configs.NewLoader(paths, schema)
	}

	filenames := []string{
		"tapecalc.cue",
		".tapecalc.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, "tapecalc", filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}

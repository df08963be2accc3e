package wdcli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/util-go/xdefer"
)

// ConfigFileName is looked up next to the input path and then in the working
// directory when --config is not given.
const ConfigFileName = ".wavedrom.yml"

// fileConfig is the optional project config file. Values act as defaults:
// environment variables and flags both take precedence.
type fileConfig struct {
	Renderer  string `yaml:"renderer"`
	Converter string `yaml:"converter"`
	Format    string `yaml:"format"`
	OutDir    string `yaml:"out-dir"`
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	// Timeout is in seconds.
	Timeout int64 `yaml:"timeout"`
}

// loadFileConfig reads the project config. An explicitly passed path must
// exist; the default lookup locations may be missing, which yields a zero
// config.
func loadFileConfig(path, inputPath string) (_ *fileConfig, err error) {
	defer xdefer.Errorf(&err, "failed to load config")

	explicit := path != ""
	if !explicit {
		path = findConfigFile(inputPath)
		if path == "" {
			return &fileConfig{}, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, err
	}

	var fc fileConfig
	err = yaml.Unmarshal(b, &fc)
	if err != nil {
		return nil, err
	}
	return &fc, nil
}

func findConfigFile(inputPath string) string {
	var candidates []string
	if inputPath != "" {
		dir := inputPath
		if fi, err := os.Stat(inputPath); err != nil || !fi.IsDir() {
			dir = filepath.Dir(inputPath)
		}
		candidates = append(candidates, filepath.Join(dir, ConfigFileName))
	}
	candidates = append(candidates, ConfigFileName)

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

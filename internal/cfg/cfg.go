package cfg

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/solidground/facade/internal/env"
)

func configPath() string {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".facade")
	}
	return path
}

func Update(f func(map[string]string)) (string, error) {
	path := configPath()

	cfgFile, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return "", err
	}
	defer cfgFile.Close()

	cfg := make(map[string]string)
	if err = env.NewDecoder(cfgFile).Decode(&cfg); err != nil {
		return "", err
	}

	f(cfg)

	if err = cfgFile.Truncate(0); err != nil {
		return "", err
	}
	if _, err = cfgFile.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return path, env.NewEncoder(cfgFile).Encode(cfg)
}

func Get() (string, error) {
	cfgFile, err := os.OpenFile(configPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	defer cfgFile.Close()

	buff := new(bytes.Buffer)
	if _, err = io.Copy(buff, cfgFile); err != nil {
		return "", err
	}

	return buff.String(), nil
}

func GetKeyValue() (map[string]string, error) {
	r, err := Get()
	if err != nil {
		return nil, err
	}

	cfg := make(map[string]string)
	if err = env.NewDecoder(bytes.NewReader([]byte(r))).Decode(&cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

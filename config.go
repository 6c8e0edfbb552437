package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config carries the optional file-based defaults. Flags win over file
// values when both are set.
type Config struct {
	Targets        []string `mapstructure:"targets"`
	Workers        int      `mapstructure:"workers"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
	Output         string   `mapstructure:"output"`
	Username       string   `mapstructure:"username"`
	AgentPath      string   `mapstructure:"agent_path"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	return &cfg, nil
}

// loadTargetsFile reads one host identifier per line; blank lines and
// #-comments are skipped. Blank entries inside the list are handled later
// by core.ParseTargets.
func loadTargetsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open targets file %s", path)
	}
	defer f.Close()

	var hosts []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hosts = append(hosts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read targets file %s", path)
	}
	return hosts, nil
}

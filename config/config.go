// Package config loads mustuse.conf configuration files.
//
// Configuration files are searched for in a package's directory and
// all of its parents. Files closer to the package override files
// further up; list values may refer to the parent's value with the
// special entry "inherit".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"golang.org/x/tools/go/analysis"
)

// Dir looks at a list of absolute file names, which should make up a
// single package, and returns the path of the directory that may
// contain a mustuse.conf file. It returns the empty string if no such
// directory could be determined, for example because all files were
// located in Go's build cache.
func Dir(files []string) string {
	if len(files) == 0 {
		return ""
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = ""
	}
	var path string
	for _, p := range files {
		if cache != "" && strings.HasPrefix(p, cache+string(filepath.Separator)) {
			// File in the build cache of the standard Go build system
			continue
		}
		path = p
		break
	}

	if path == "" {
		// The package only consists of cgo-generated files.
		return ""
	}

	dir := filepath.Dir(path)
	return dir
}

var Analyzer = &analysis.Analyzer{
	Name: "config",
	Doc:  "loads configuration for the current package tree",
	Run: func(pass *analysis.Pass) (any, error) {
		files := make([]string, 0, len(pass.Files))
		for _, f := range pass.Files {
			files = append(files, pass.Fset.PositionFor(f.Pos(), true).Filename)
		}
		dir := Dir(files)
		if dir == "" {
			cfg := DefaultConfig
			return &cfg, nil
		}
		cfg, err := Load(dir)
		if err != nil {
			return nil, fmt.Errorf("error loading configuration: %w", err)
		}
		return &cfg, nil
	},
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf((*Config)(nil)),
}

// For returns the configuration of the package being analyzed. The
// analyzer must require Analyzer.
func For(pass *analysis.Pass) *Config {
	return pass.ResultOf[Analyzer].(*Config)
}

func mergeLists(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, el := range b {
		if el == "inherit" {
			out = append(out, a...)
		} else {
			out = append(out, el)
		}
	}
	return out
}

func normalizeList(list []string) []string {
	if len(list) > 1 {
		nlist := make([]string, 0, len(list))
		nlist = append(nlist, list[0])
		for i, el := range list[1:] {
			if el != list[i] {
				nlist = append(nlist, el)
			}
		}
		list = nlist
	}

	for _, el := range list {
		if el == "inherit" {
			// This should never happen, because the default config
			// should not use "inherit"
			panic(`unresolved "inherit"`)
		}
	}

	return list
}

type config struct {
	cfg  Config
	meta toml.MetaData
}

// Merge returns cfg with the values explicitly set in ocfg applied on
// top.
func (cfg config) Merge(ocfg config) config {
	if ocfg.meta.IsDefined("checks") {
		cfg.cfg.Checks = mergeLists(cfg.cfg.Checks, ocfg.cfg.Checks)
	}
	if ocfg.meta.IsDefined("mustuse", "policy") {
		cfg.cfg.MustUse.Policy = ocfg.cfg.MustUse.Policy
	}
	return cfg
}

type Config struct {
	// Checks lists the enabled checks. An entry prefixed with '-'
	// disables a check, "all" or "*" matches every check.
	Checks  []string      `toml:"checks"`
	MustUse MustUseConfig `toml:"mustuse"`
}

type MustUseConfig struct {
	// Policy names the set of contexts that count as using a value
	// of a must-use type. See the mustuse package for valid values.
	Policy string `toml:"policy"`
}

var DefaultConfig = Config{
	Checks: []string{"all"},
	MustUse: MustUseConfig{
		Policy: "strict",
	},
}

const ConfigName = "mustuse.conf"

func parseConfigs(dir string) ([]config, error) {
	var out []config

	for dir != "" {
		f, err := os.Open(filepath.Join(dir, ConfigName))
		if os.IsNotExist(err) {
			ndir := filepath.Dir(dir)
			if ndir == dir {
				break
			}
			dir = ndir
			continue
		}
		if err != nil {
			return nil, err
		}
		var cfg Config
		meta, err := toml.NewDecoder(f).Decode(&cfg)
		f.Close()
		if err != nil {
			var perr toml.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%s:%d: %s", filepath.Join(dir, ConfigName), perr.Position.Line, perr.Message)
			}
			return nil, fmt.Errorf("%s: %w", filepath.Join(dir, ConfigName), err)
		}
		out = append(out, config{cfg, meta})
		ndir := filepath.Dir(dir)
		if ndir == dir {
			break
		}
		dir = ndir
	}
	out = append(out, config{
		cfg:  DefaultConfig,
		meta: toml.MetaData{}, // meta of the base config should never be accessed
	})
	if len(out) < 2 {
		return out, nil
	}
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

func mergeConfigs(confs []config) Config {
	if len(confs) == 0 {
		// This shouldn't happen because we always have at least a
		// default config.
		panic("trying to merge zero configs")
	}
	if len(confs) == 1 {
		return confs[0].cfg
	}
	conf := confs[0]
	for _, oconf := range confs[1:] {
		conf = conf.Merge(oconf)
	}
	return conf.cfg
}

// Load returns the merged configuration for dir.
func Load(dir string) (Config, error) {
	confs, err := parseConfigs(dir)
	if err != nil {
		return Config{}, err
	}
	conf := mergeConfigs(confs)

	conf.Checks = normalizeList(conf.Checks)
	return conf, nil
}

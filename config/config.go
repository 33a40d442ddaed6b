// Package config loads rangecheck.conf files.
//
// Configuration files are searched for in the directory of the package
// being analyzed and in all of its parents. Files closer to the package
// take precedence; list values may refer to the value of the parent
// configuration with the special element "inherit".
package config

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"golang.org/x/tools/go/analysis"
)

const configName = "rangecheck.conf"

var Analyzer = &analysis.Analyzer{
	Name: "config",
	Doc:  "loads configuration for the current package tree",
	Run: func(pass *analysis.Pass) (interface{}, error) {
		dir := dirAST(pass.Files, pass.Fset)
		if dir == "" {
			cfg := DefaultConfig
			return &cfg, nil
		}
		cfg, err := Load(dir)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", configName, err)
		}
		return &cfg, nil
	},
	RunDespiteErrors: true,
	ResultType:       reflect.TypeOf((*Config)(nil)),
}

// For returns the configuration computed by Analyzer for the current pass.
func For(pass *analysis.Pass) *Config {
	return pass.ResultOf[Analyzer].(*Config)
}

func dirAST(files []*ast.File, fset *token.FileSet) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = fset.PositionFor(f.Pos(), true).Filename
	}
	return Dir(names)
}

// Dir returns the directory holding the first file that isn't in the
// build cache, or the empty string if there is no such file.
func Dir(files []string) string {
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = ""
	}
	for _, p := range files {
		// Files in the build cache are cgo or generated output.
		if cache != "" && strings.HasPrefix(p, cache) {
			continue
		}
		if p == "" {
			continue
		}
		return filepath.Dir(p)
	}
	return ""
}

type Config struct {
	// Checks lists the check IDs to run. An element prefixed with "-"
	// disables checks, "all" matches every check and a trailing "*"
	// matches a category or a prefix of IDs.
	Checks []string `toml:"checks"`
	// IntSize is the size of int and uint in bits.
	IntSize int `toml:"int_size"`
}

var DefaultConfig = Config{
	Checks:  []string{"all"},
	IntSize: 64,
}

// Sizes returns the type sizes implied by the configured size of int.
func (c *Config) Sizes() types.Sizes {
	word := int64(c.IntSize / 8)
	return &types.StdSizes{WordSize: word, MaxAlign: word}
}

// Enabled reports whether the check with the given ID is enabled.
// Later elements of Checks override earlier ones.
func (c *Config) Enabled(check string) bool {
	enabled := false
	for _, pat := range c.Checks {
		b := true
		if len(pat) > 1 && pat[0] == '-' {
			b = false
			pat = pat[1:]
		}
		if MatchCheck(pat, check) {
			enabled = b
		}
	}
	return enabled
}

// MatchCheck reports whether the check ID matches pat, which is an ID,
// "all", or a prefix followed by "*".
func MatchCheck(pat, check string) bool {
	if pat == "*" || pat == "all" {
		return true
	}
	if !strings.HasSuffix(pat, "*") {
		return pat == check
	}
	prefix := pat[:len(pat)-1]
	isDigit := func(r rune) bool { return unicode.IsNumber(r) }
	if strings.IndexFunc(prefix, isDigit) == -1 {
		// RC* matches RC1000 but not RCX1000
		idx := strings.IndexFunc(check, isDigit)
		return idx != -1 && check[:idx] == prefix
	}
	return strings.HasPrefix(check, prefix)
}

type config struct {
	cfg  Config
	meta toml.MetaData
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
	for _, el := range list {
		if el == "inherit" {
			// The default config never uses "inherit".
			panic(`unresolved "inherit"`)
		}
	}
	// Order matters for negated checks, so only adjacent duplicates go.
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
	return list
}

func (cfg config) Merge(ocfg config) config {
	if ocfg.meta.IsDefined("checks") {
		cfg.cfg.Checks = mergeLists(cfg.cfg.Checks, ocfg.cfg.Checks)
	}
	if ocfg.meta.IsDefined("int_size") {
		cfg.cfg.IntSize = ocfg.cfg.IntSize
	}
	return cfg
}

func parseConfigs(dir string) ([]config, error) {
	var out []config

	for dir != "" {
		f, err := os.Open(filepath.Join(dir, configName))
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
			return nil, fmt.Errorf("%s: %w", filepath.Join(dir, configName), err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%s: unknown keys %s", filepath.Join(dir, configName), strings.Join(keys, ", "))
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
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

func mergeConfigs(confs []config) Config {
	if len(confs) == 0 {
		// We always have at least the default config.
		panic("trying to merge zero configs")
	}
	conf := confs[0]
	for _, oconf := range confs[1:] {
		conf = conf.Merge(oconf)
	}
	return conf.cfg
}

// Load returns the configuration for packages in dir, merging every
// rangecheck.conf found in dir and its parents over the defaults.
func Load(dir string) (Config, error) {
	confs, err := parseConfigs(dir)
	if err != nil {
		return Config{}, err
	}
	conf := mergeConfigs(confs)
	conf.Checks = normalizeList(conf.Checks)
	if conf.IntSize != 32 && conf.IntSize != 64 {
		return Config{}, fmt.Errorf("int_size must be 32 or 64, not %d", conf.IntSize)
	}
	return conf, nil
}

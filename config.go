package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

const (
	// configEnvKey points at an explicit config file. When set, the file
	// must exist and parse; when unset, a .rust_ldflags.yaml in the
	// working directory is picked up if present.
	configEnvKey      = "RUST_LDFLAGS_CONFIG"
	defaultConfigName = ".rust_ldflags.yaml"

	// rustcEnvKey overrides the rustc executable. The plain RUSTC
	// variable is honored as a fallback since cargo and friends
	// already use it.
	rustcEnvKey         = "RUST_LDFLAGS_RUSTC"
	rustcFallbackEnvKey = "RUSTC"

	verboseEnvKey = "RUST_LDFLAGS_VERBOSE"
)

type config struct {
	// The rustc executable to spawn, a bare name or a path.
	rustc string
	// Extra rustc flags inserted before the user arguments.
	rustcFlags []string
	// Whether to echo spawned commands to stderr.
	verbose bool
	// The config file the values came from, empty when none was read.
	configFile string
}

// loadConfig builds the orchestrator configuration from defaults, an
// optional YAML config file and environment overrides, in that order of
// precedence (later wins). The capture role never loads config.
func loadConfig(env env) (*config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("rustc", "rustc")
	v.SetDefault("rustc_flags", []string{})
	v.SetDefault("verbose", false)

	configFile := env.getenv(configEnvKey)
	if configFile == "" {
		candidate := filepath.Join(env.getwd(), defaultConfigName)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, newUserErrorf("failed to read config file %s: %s", configFile, err)
		}
		if err := validateConfigBytes(data); err != nil {
			return nil, err
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, wrapErrorwithSourceLocf(err, "failed to parse config file %s", configFile)
		}
	}

	if rustc := env.getenv(rustcEnvKey); rustc != "" {
		v.Set("rustc", rustc)
	} else if rustc := env.getenv(rustcFallbackEnvKey); rustc != "" {
		v.Set("rustc", rustc)
	}
	if verbose := env.getenv(verboseEnvKey); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return nil, newUserErrorf("invalid %s value %q: %s", verboseEnvKey, verbose, err)
		}
		v.Set("verbose", b)
	}

	return &config{
		rustc:      v.GetString("rustc"),
		rustcFlags: v.GetStringSlice("rustc_flags"),
		verbose:    v.GetBool("verbose"),
		configFile: configFile,
	}, nil
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type TreeConfig struct {
	// Exclusive bounds handed to IsValidBST by the check operation.
	// math.MinInt and math.MaxInt leave that side open.
	LowerBound       int  `yaml:"lower_bound"`
	UpperBound       int  `yaml:"upper_bound"`
	CheckAfterEachOp bool `yaml:"check_after_each_op"`
}

type FillConfig struct {
	Count        int    `yaml:"count"`
	Seed         uint64 `yaml:"seed"`
	MinKey       int    `yaml:"min_key"`
	MaxKey       int    `yaml:"max_key"`
	ShowProgress bool   `yaml:"show_progress"`
	BloomSize    uint   `yaml:"bloom_size"`
	BloomHashes  uint   `yaml:"bloom_hashes"`
}

type CacheConfig struct {
	SearchTTLSeconds int `yaml:"search_ttl_seconds"`
}

type UIConfig struct {
	WordWrap int `yaml:"word_wrap"`
}

type Config struct {
	Tree  TreeConfig  `yaml:"tree"`
	Fill  FillConfig  `yaml:"fill"`
	Cache CacheConfig `yaml:"cache"`
	UI    UIConfig    `yaml:"ui"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		LowerBound:       math.MinInt,
		UpperBound:       math.MaxInt,
		CheckAfterEachOp: true,
	},
	Fill: FillConfig{
		Count:        1000,
		Seed:         1,
		MinKey:       0,
		MaxKey:       1_000_000,
		ShowProgress: true,
		BloomSize:    1 << 16,
		BloomHashes:  4,
	},
	Cache: CacheConfig{
		SearchTTLSeconds: 600,
	},
	UI: UIConfig{
		WordWrap: 72,
	},
}

// SearchTTL returns the lifetime of memoised search results.
func (c *Config) SearchTTL() time.Duration {
	if c.Cache.SearchTTLSeconds <= 0 {
		return searchCacheExpiration
	}
	return time.Duration(c.Cache.SearchTTLSeconds) * time.Second
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlkit.yaml. A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at path on top of the defaults, so keys
// missing from the file keep their default values. On a parse error the
// defaults are returned together with the error.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "avlkit configuration\n")
	fmt.Fprintf(w, "====================\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "%stree%s\n", Green, Reset)
	fmt.Fprintf(w, "  lower_bound: %s\n", boundText(cfg.Tree.LowerBound, math.MinInt))
	fmt.Fprintf(w, "  upper_bound: %s\n", boundText(cfg.Tree.UpperBound, math.MaxInt))
	fmt.Fprintf(w, "  check_after_each_op: %t\n", cfg.Tree.CheckAfterEachOp)

	fmt.Fprintf(w, "%sfill%s\n", Green, Reset)
	fmt.Fprintf(w, "  count: %d  seed: %d  keys: [%d, %d]\n", cfg.Fill.Count, cfg.Fill.Seed, cfg.Fill.MinKey, cfg.Fill.MaxKey)
	fmt.Fprintf(w, "  bloom_size: %d  bloom_hashes: %d  show_progress: %t\n", cfg.Fill.BloomSize, cfg.Fill.BloomHashes, cfg.Fill.ShowProgress)

	fmt.Fprintf(w, "%scache%s\n", Green, Reset)
	fmt.Fprintf(w, "  search_ttl_seconds: %d\n", cfg.Cache.SearchTTLSeconds)

	fmt.Fprintf(w, "%sui%s\n", Green, Reset)
	fmt.Fprintf(w, "  word_wrap: %d\n", cfg.UI.WordWrap)

	if !cfg.Tree.CheckAfterEachOp {
		fmt.Fprintf(w, "\n%sInvariant checks after each operation are disabled.%s\n", Warning, Reset)
	}
	return nil
}

// boundText shows a key bound, marking the open default.
func boundText(bound, open int) string {
	if bound == open {
		return fmt.Sprintf("%d (open)", bound)
	}
	return fmt.Sprintf("%d (exclusive)", bound)
}

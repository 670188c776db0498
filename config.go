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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/artistfinder/catalog"
)

const configFileName = ".artistfinder.yaml"

type DataConfig struct {
	Small string `yaml:"small"`
	Large string `yaml:"large"`
	Probe string `yaml:"probe"`
}

type IndexConfig struct {
	Mode        string `yaml:"mode"`
	BloomSize   uint   `yaml:"bloom_size"`
	BloomHashes uint   `yaml:"bloom_hashes"`
}

type DisplayConfig struct {
	PageSize     int `yaml:"page_size"`
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Index   IndexConfig   `yaml:"index"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Data: DataConfig{
		Small: "Data/spanishArtists.csv",
		Large: "Data/usArtists.csv",
		Probe: "Data/cercaArtists.csv",
	},
	Index: IndexConfig{
		Mode:        string(catalog.ModeBalanced),
		BloomSize:   1 << 16,
		BloomHashes: 4,
	},
	Display: DisplayConfig{
		PageSize:     40,
		CacheMinutes: 30,
	},
}

// fillDefaults replaces zero and invalid values with the defaults, so a
// partial config file only overrides what it names.
func (c *Config) fillDefaults() {
	if c.Data.Small == "" {
		c.Data.Small = defaultConfig.Data.Small
	}
	if c.Data.Large == "" {
		c.Data.Large = defaultConfig.Data.Large
	}
	if c.Data.Probe == "" {
		c.Data.Probe = defaultConfig.Data.Probe
	}
	if _, err := catalog.ParseMode(c.Index.Mode); err != nil || c.Index.Mode == "" {
		c.Index.Mode = defaultConfig.Index.Mode
	}
	if c.Index.BloomSize == 0 {
		c.Index.BloomSize = defaultConfig.Index.BloomSize
	}
	if c.Index.BloomHashes == 0 {
		c.Index.BloomHashes = defaultConfig.Index.BloomHashes
	}
	if c.Display.PageSize <= 0 {
		c.Display.PageSize = defaultConfig.Display.PageSize
	}
	if c.Display.CacheMinutes <= 0 {
		c.Display.CacheMinutes = defaultConfig.Display.CacheMinutes
	}
}

// IndexMode returns the configured insertion mode.
func (c *Config) IndexMode() catalog.Mode {
	mode, err := catalog.ParseMode(c.Index.Mode)
	if err != nil {
		return catalog.ModeBalanced
	}
	return mode
}

// LoadConfig reads the config file at path, or ~/.artistfinder.yaml when
// path is empty. A missing or unreadable file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return &config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	parsed.fillDefaults()

	return &parsed, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when there is none.
func displaySettings(w io.Writer, configPath string) {
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			fmt.Fprintf(w, "%s❌ Failed to get config path: %v%s\n", Error, err, Reset)
			return
		}
		configPath = p
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "%s❌ Failed to create default config file: %v%s\n", Error, err, Reset)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(w, "%s❌ Failed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Fprintf(w, "🔧 Artist Finder Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s%s%s\n", Info, configPath, Reset)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s%s%s (newly created)\n", Info, configPath, Reset)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "📂 %sData files:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %ssmall%s: %s\n", Green, Reset, config.Data.Small)
	fmt.Fprintf(w, "  • %slarge%s: %s\n", Green, Reset, config.Data.Large)
	fmt.Fprintf(w, "  • %sprobe%s: %s\n\n", Green, Reset, config.Data.Probe)

	fmt.Fprintf(w, "🌳 %sIndex:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %smode%s: %s\n", Green, Reset, config.Index.Mode)
	if config.IndexMode() == catalog.ModePlain {
		fmt.Fprintf(w, "    Plain search tree, insertion order decides its height\n")
	} else {
		fmt.Fprintf(w, "    AVL tree, rebalanced after every insertion\n")
	}
	fmt.Fprintf(w, "  • %sbloom_size%s: %d bits, %sbloom_hashes%s: %d\n\n",
		Green, Reset, config.Index.BloomSize, Green, Reset, config.Index.BloomHashes)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %spage_size%s: %d\n", Green, Reset, config.Display.PageSize)
	fmt.Fprintf(w, "  • %scache_minutes%s: %d\n\n", Green, Reset, config.Display.CacheMinutes)

	fmt.Fprintf(w, "💡 To compare with a plain search tree, edit %s:\n", configPath)
	fmt.Fprintf(w, "   index:\n     mode: plain\n")
}

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
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"

	"github.com/cybrota/artistfinder/actions"
	"github.com/cybrota/artistfinder/catalog"
)

var version = "dev"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	file       string
	mode       string
	configPath string
}

// session is everything a command needs to query the catalog.
type session struct {
	config  *Config
	cache   *cache.Cache
	finder  *catalog.Finder
	manager *actions.Manager
}

func newSession(flags *globalFlags, showProgress bool) (*session, error) {
	config, err := LoadConfig(flags.configPath)
	if err != nil {
		log.Printf("%sFailed to load configuration: %v. Using default settings.%s", Warning, err, Reset)
	}

	mode := config.IndexMode()
	if flags.mode != "" {
		if mode, err = catalog.ParseMode(flags.mode); err != nil {
			return nil, err
		}
	}

	qc := NewQueryCache(config.Display.CacheMinutes)
	finder := catalog.NewFinder(catalog.Options{
		Mode:        mode,
		BloomSize:   config.Index.BloomSize,
		BloomHashes: config.Index.BloomHashes,
		Cache:       qc,
	})
	env := &actions.Env{
		Finder: finder,
		Paths: actions.Paths{
			Small: config.Data.Small,
			Large: config.Data.Large,
			Probe: config.Data.Probe,
		},
		PageSize:     config.Display.PageSize,
		ShowProgress: showProgress,
	}

	return &session{
		config:  config,
		cache:   qc,
		finder:  finder,
		manager: actions.NewManager(env),
	}, nil
}

// preload loads the --file catalog, if any, before a command runs.
func (s *session) preload(path string, showProgress bool) {
	if path == "" {
		return
	}
	stats, err := s.finder.LoadFile(path, showProgress)
	if err != nil {
		log.Fatalf("Error loading %s: %v", path, err)
	}
	if stats.Malformed > 0 || stats.Duplicates > 0 {
		log.Printf("%s%s: %s%s", Warning, path, stats, Reset)
	}
}

func mustSession(flags *globalFlags, showProgress bool) *session {
	s, err := newSession(flags, showProgress)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return s
}

func main() {
	asciiLogo := `
 █████╗ ██████╗ ████████╗██╗███████╗████████╗
██╔══██╗██╔══██╗╚══██╔══╝██║██╔════╝╚══██╔══╝
███████║██████╔╝   ██║   ██║███████╗   ██║
██╔══██║██╔══██╗   ██║   ██║╚════██║   ██║
██║  ██║██║  ██║   ██║   ██║███████║   ██║   finder
╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝╚══════╝   ╚═╝
Artist catalogs indexed in a self-balancing AVL tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	flags := &globalFlags{}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Opens the interactive artist menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Menu lists the catalog actions and runs them with typed arguments`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			s := mustSession(flags, false)
			s.preload(flags.file, true)
			if err := runBubbleTeaApp(s.manager, s.cache); err != nil {
				log.Fatalf("Error running menu: %v", err)
			}
		},
	}

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard",
		Short: "Shows tree statistics, sorted IDs and a style chart",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dashboard loads the catalog and draws it in a terminal grid`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			s := mustSession(flags, false)
			path := flags.file
			if path == "" {
				path = s.config.Data.Small
			}
			s.preload(path, true)
			run(s.finder, path, time.Now())
		},
	}

	var cmdQuery = &cobra.Command{
		Use:   "query <action> [args...]",
		Short: "Runs a single menu action and exits",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Query runs one action, e.g. "query show 40" or "query style Flamenco"`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s := mustSession(flags, false)
			s.preload(flags.file, false)
			out, err := s.manager.RunParts(context.Background(), args)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			fmt.Println(out)
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Prints the catalog IDs in ascending order",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			s := mustSession(flags, false)
			path := flags.file
			if path == "" {
				path = s.config.Data.Small
			}
			s.preload(path, false)

			out := fullListing(s.finder, s.config.Display.PageSize)

			usePager, _ := cmd.Flags().GetBool("pager")
			if !usePager {
				fmt.Println(out)
				return
			}
			if err := runPager(out); err != nil {
				log.Fatalf("Error running pager: %v", err)
			}
		},
	}
	cmdList.Flags().Bool("pager", false, "page the listing through $PAGER")

	var cmdWalkthrough = &cobra.Command{
		Use:   "walkthrough",
		Short: "Prints every tree operation on a small integer tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Walkthrough inserts a fixed key set plainly and balanced and prints traversals, mirrors and leaves`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runWalkthrough(os.Stdout); err != nil {
				log.Fatalf("Error: %v", err)
			}
			if flags.file == "" {
				return
			}
			s := mustSession(flags, false)
			if err := runCatalogWalkthrough(os.Stdout, s.finder, flags.file, s.config.Display.PageSize); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Shows the configuration, creating the default file if needed",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout, flags.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Artist Finder usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the artistfinder CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Artist Finder version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "artistfinder",
		Version: version,
		Long:    asciiLogo,
		Run:     cmdMenu.Run,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "artist file to load at startup")
	rootCmd.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "", "index mode: "+strings.Join([]string{string(catalog.ModeBalanced), string(catalog.ModePlain)}, " or "))
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/"+configFileName+")")

	rootCmd.AddCommand(cmdMenu, cmdDashboard, cmdQuery, cmdList, cmdWalkthrough, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}

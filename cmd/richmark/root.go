// Copyright 2026 The Richmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"richmark.dev/go/richmark"
	"richmark.dev/go/richmark/asset"
	"richmark.dev/go/richmark/internal/postfile"
	"richmark.dev/go/richmark/poll"
)

var rootCmd = &cobra.Command{
	Use:   "richmark",
	Short: "Render blog markup and manage poll and asset state",
	Long: `richmark renders authored blog documents to HTML and manages the
poll vote ledger and asset store that rendering consults.

Examples:
  richmark render post.md
  richmark render --category travel --post lisbon
  richmark vote poll-intro-4-pickone A
  richmark results poll-intro-4-pickone`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the poll ledger and asset store")
	rootCmd.PersistentFlags().String("posts-dir", "", "Directory holding authored posts")
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("posts_dir", rootCmd.PersistentFlags().Lookup("posts-dir"))

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "richmark"))
	}
	viper.AddConfigPath(".")

	viper.SetDefault("posts_dir", "posts")
	viper.SetDefault("placeholder_image", "/images/not-found.png")
	viper.SetDefault("highlight_style", "github")
	viper.SetDefault("secret_polls", false)

	// The config file is optional.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "richmark: read config:", err)
		}
	}
}

func dataDir() (string, error) {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "richmark"), nil
}

func openPollStore() (*poll.Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return poll.Open(poll.Config{Path: filepath.Join(dir, "polls.db")})
}

func openAssetStore() (*asset.Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return asset.Open(asset.Config{Path: filepath.Join(dir, "assets.db")})
}

func loadVoterID() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return poll.LoadVoterID(filepath.Join(dir, "voter-id"))
}

func loadPosts() (*postfile.Store, error) {
	return postfile.Load(viper.GetString("posts_dir"))
}

// newRenderer wires the asset resolver for a render scoped to current.
// posts and stores may be nil; resolution degrades tier by tier.
func newRenderer(assets *asset.Store, posts *postfile.Store, current *richmark.Post) *richmark.Renderer {
	resolver := &richmark.AssetResolver{Current: current}
	if assets != nil {
		resolver.Store = assets.Namespace(asset.NamespaceCurrent)
		resolver.Legacy = assets.Namespace(asset.NamespaceLegacy)
	}
	if posts != nil {
		resolver.Posts = posts
	}
	return &richmark.Renderer{Assets: resolver}
}

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
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"richmark.dev/go/richmark"
	"richmark.dev/go/richmark/internal/oembed"
)

var (
	renderCategory string
	renderPost     string
	renderTitles   bool
)

func init() {
	renderCmd.Flags().StringVar(&renderCategory, "category", "", "Category of the post to render")
	renderCmd.Flags().StringVar(&renderPost, "post", "", "Slug of the post to render")
	renderCmd.Flags().BoolVar(&renderTitles, "titles", false, "Fetch embed titles before rendering")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document or stored post to HTML on stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, current, err := loadDocument(args)
		if err != nil {
			return err
		}

		assets, err := openAssetStore()
		if err != nil {
			return err
		}
		defer assets.Close()

		posts, err := loadPosts()
		if err != nil {
			// Rendering still works without the post scan tier.
			fmt.Fprintln(os.Stderr, "richmark:", err)
		}

		blocks := newRenderer(assets, posts, current).Render(doc)

		voterID, err := loadVoterID()
		if err != nil {
			return err
		}
		polls, err := openPollStore()
		if err != nil {
			return err
		}
		defer polls.Close()

		html := &richmark.HTMLRenderer{
			Polls:          polls,
			VoterID:        voterID,
			SecretPolls:    viper.GetBool("secret_polls"),
			Placeholder:    viper.GetString("placeholder_image"),
			HighlightStyle: viper.GetString("highlight_style"),
		}
		if renderTitles {
			html.Titles = fetchTitles(cmd.Context(), blocks)
		}

		if err := html.Render(os.Stdout, blocks); err != nil {
			return err
		}
		fmt.Println()
		return nil
	},
}

func loadDocument(args []string) (string, *richmark.Post, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("read document: %w", err)
		}
		return string(data), nil, nil
	}
	if renderPost == "" {
		return "", nil, fmt.Errorf("render: a file argument or --post is required")
	}
	posts, err := loadPosts()
	if err != nil {
		return "", nil, err
	}
	post := posts.Find(renderCategory, renderPost)
	if post == nil {
		return "", nil, fmt.Errorf("render: post %s/%s not found", renderCategory, renderPost)
	}
	return post.Content, post, nil
}

// fetchTitles waits for the out-of-band title lookups, bounded so a
// slow provider cannot hold the command open.
func fetchTitles(ctx context.Context, blocks []richmark.Block) map[int]string {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	var mu sync.Mutex
	titles := make(map[int]string)
	done := richmark.FetchTitles(ctx, new(oembed.Client), blocks, func(line int, title string) {
		mu.Lock()
		defer mu.Unlock()
		titles[line] = title
	})
	select {
	case <-done:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()
	out := make(map[int]string, len(titles))
	for line, title := range titles {
		out[line] = title
	}
	return out
}

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
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"richmark.dev/go/richmark/asset"
)

var assetLegacy bool

func init() {
	assetCmd.PersistentFlags().BoolVar(&assetLegacy, "legacy", false, "Operate on the legacy namespace")
	assetCmd.AddCommand(assetPutCmd)
	assetCmd.AddCommand(assetGetCmd)
	rootCmd.AddCommand(assetCmd)
}

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage the namespaced asset store",
}

func assetNamespace() string {
	if assetLegacy {
		return asset.NamespaceLegacy
	}
	return asset.NamespaceCurrent
}

var assetPutCmd = &cobra.Command{
	Use:   "put <key> <file>",
	Short: "Store a file's contents under a short reference name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, path := args[0], args[1]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read asset file: %w", err)
		}
		mediaType := mime.TypeByExtension(filepath.Ext(path))
		if mediaType == "" {
			mediaType = "application/octet-stream"
		}
		payload := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)

		assets, err := openAssetStore()
		if err != nil {
			return err
		}
		defer assets.Close()
		return assets.Put(assetNamespace(), key, payload)
	},
}

var assetGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the payload stored under a reference name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := openAssetStore()
		if err != nil {
			return err
		}
		defer assets.Close()

		payload, err := assets.Get(assetNamespace(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(payload)
		return nil
	},
}

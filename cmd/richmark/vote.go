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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"richmark.dev/go/richmark/poll"
)

func init() {
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(resultsCmd)
}

var voteCmd = &cobra.Command{
	Use:   "vote <poll-id> <option>",
	Short: "Record this machine's vote on a poll",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pollID, option := args[0], args[1]

		voterID, err := loadVoterID()
		if err != nil {
			return err
		}
		polls, err := openPollStore()
		if err != nil {
			return err
		}
		defer polls.Close()

		err = polls.CastVote(pollID, voterID, option)
		if errors.Is(err, poll.ErrAlreadyVoted) {
			// A repeat vote is a no-op for the voter, not a failure.
			fmt.Println("already voted")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("vote recorded")
		return nil
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results <poll-id>",
	Short: "Show the recorded counts for a poll",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		polls, err := openPollStore()
		if err != nil {
			return err
		}
		defer polls.Close()

		state, err := polls.State(args[0], nil, "")
		if err != nil {
			return err
		}
		if len(state.Counts) == 0 {
			fmt.Println("no votes recorded")
			return nil
		}
		total := state.Total()
		for option, count := range state.Counts {
			percent := 0
			if total > 0 {
				percent = count * 100 / total
			}
			fmt.Printf("%-30s %4d (%d%%)\n", option, count, percent)
		}
		fmt.Printf("%-30s %4d\n", "total", total)
		return nil
	},
}

// AnimeCRC - CRC32 generator and checker
// Copyright (C) 2026 AnimeCRC contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/animecrc/animecrc/internal/ops"
)

var tagCmd = &cobra.Command{
	Use:     "tag [files...]",
	Aliases: []string{"add"},
	Short:   "Generate CRC32 tags for files missing them",
	Long: `Compute the CRC32 of each file that has no declared CRC yet and write
it to every store in the write chain. Files that already carry a tag in
any read store are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(args)
		if err != nil {
			return err
		}
		defer s.progress.Clear()

		return ops.Tag(cmd.Context(), s.files, s.readChain, s.writeChain, ops.Options{
			Progress: s.progress,
		})
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/animecrc/animecrc/internal/ops"
	"github.com/animecrc/animecrc/internal/store"
	"github.com/animecrc/animecrc/internal/ui"
)

// Version is set by ldflags at build time.
var Version = "1.0.0"

var (
	flagRecursive  bool
	flagDebug      bool
	flagWarning    bool
	flagWarnNoCRC  bool
	flagNoProgress bool
	flagQuietXattr bool
	flagReadFrom   string
	flagWriteTo    string
	flagConfig     string
)

// errMismatch marks a completed check that found at least one bad file.
// The mismatches themselves were already logged per file.
var errMismatch = errors.New("CRC mismatch found")

// errConfiguration marks setup failures that must abort before any file
// is touched (exit code 2, like an unknown store name).
var errConfiguration = errors.New("invalid configuration")

var rootCmd = &cobra.Command{
	Use:   "animecrc [files...]",
	Short: "CRC32 generator and checker",
	Long: `animecrc verifies and stamps file integrity using CRC32 tags embedded
either in the file name (a bracketed 8-hex-digit token) or in an
extended attribute. Run it with a list of files or directories to
check them; see the tag and untag subcommands to add or remove tags.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case flagDebug:
			ui.SetLevel(ui.LevelDebug)
		case flagWarning:
			ui.SetLevel(ui.LevelWarning)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		s, err := newSession(args)
		if err != nil {
			return err
		}
		defer s.progress.Clear()

		mismatch, err := ops.Check(cmd.Context(), s.files, s.readChain, ops.Options{
			WarnNoCRC: flagWarnNoCRC || s.cfg.WarnNoCRC,
			Progress:  s.progress,
		})
		if err != nil {
			return err
		}
		if mismatch {
			return errMismatch
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("animecrc version %s\n", Version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagRecursive, "recursive", "r", false, "Explore directories recursively")
	pf.BoolVar(&flagDebug, "debug", false, "Set log level to debugging messages")
	pf.BoolVar(&flagWarning, "warning", false, "Set log level to warnings (hides successful files)")
	pf.BoolVar(&flagWarnNoCRC, "warn-no-crc", false, "Warn if no CRC tags are found in a file")
	pf.BoolVarP(&flagNoProgress, "no-progress", "n", false, "Disable progress reporting, even on a terminal")
	pf.BoolVar(&flagQuietXattr, "quiet-xattr", false, "Don't warn about missing extended attribute support")
	pf.StringVar(&flagReadFrom, "read-from", "", "Comma-separated tag stores used for reading (first hit wins)")
	pf.StringVar(&flagWriteTo, "write-to", "", "Comma-separated tag stores that tags are written to")
	pf.StringVar(&flagConfig, "config", "", "Configuration file to use")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("animecrc version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command and maps the error taxonomy to exit
// codes: 0 on success, 1 for mismatches, interruption or runtime errors,
// 2 for configuration errors.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMismatch), errors.Is(err, ops.ErrInterrupted):
		// Already reported line by line.
		return 1
	case isConfigError(err):
		ui.Errorf("%v", err)
		return 2
	default:
		ui.Errorf("%v", err)
		return 1
	}
}

func isConfigError(err error) bool {
	var storeErr *store.ConfigError
	return errors.As(err, &storeErr) || errors.Is(err, errConfiguration)
}

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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/animecrc/animecrc/internal/ui"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected automatically.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := ""
		if len(args) > 0 {
			shell = args[0]
		} else {
			shell = detectShell()
		}

		switch shell {
		case "bash":
			return generateCompletion(rootCmd.GenBashCompletionV2(os.Stdout, true),
				"# To enable autocompletion, add this to your ~/.bashrc:",
				"#",
				"#   eval \"$(animecrc completion bash)\"")
		case "zsh":
			return generateCompletion(rootCmd.GenZshCompletion(os.Stdout),
				"# To enable autocompletion, add this to your ~/.zshrc:",
				"#",
				"#   eval \"$(animecrc completion zsh)\"")
		case "fish":
			return generateCompletion(rootCmd.GenFishCompletion(os.Stdout, true),
				"# To enable autocompletion, run:",
				"#",
				"#   animecrc completion fish > ~/.config/fish/completions/animecrc.fish")
		default:
			return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// detectShell returns the name of the user's current shell.
func detectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		switch base := filepath.Base(sh); base {
		case "bash", "zsh", "fish":
			return base
		}
	}

	// Check parent process name via /proc on Linux.
	ppidComm := fmt.Sprintf("/proc/%d/comm", os.Getppid())
	if data, err := os.ReadFile(ppidComm); err == nil {
		switch name := strings.TrimSpace(string(data)); name {
		case "bash", "zsh", "fish":
			return name
		}
	}

	return "bash"
}

func generateCompletion(err error, hints ...string) error {
	if err != nil {
		return err
	}
	// Hints only make sense on a terminal; stay silent when the output
	// is piped to eval or redirected to a file.
	if ui.StdoutIsTTY {
		fmt.Fprintln(os.Stderr)
		for _, line := range hints {
			fmt.Fprintln(os.Stderr, line)
		}
	}
	return nil
}

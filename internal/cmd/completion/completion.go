// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	long    string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		long: `To load completions in your current shell session:

  source <(fil completion bash)

To load completions for every new session:

  # Linux
  fil completion bash > /etc/bash_completion.d/fil

  # macOS (requires bash-completion)
  fil completion bash > $(brew --prefix)/etc/bash_completion.d/fil`,
		example: `  # Load in current session
  source <(fil completion bash)

  # Install permanently (Linux)
  fil completion bash | sudo tee /etc/bash_completion.d/fil > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name: "zsh",
		long: `To load completions in your current shell session:

  source <(fil completion zsh)

To load completions for every new session, first ensure completion is enabled
(add to ~/.zshrc if not already present):

  autoload -Uz compinit && compinit

Then add the completion script to your fpath:

  fil completion zsh > "${fpath[1]}/_fil"`,
		example: `  # Load in current session
  source <(fil completion zsh)

  # Install permanently
  fil completion zsh > "${fpath[1]}/_fil"`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		long: `To load completions in your current shell session:

  fil completion fish | source

To load completions for every new session:

  fil completion fish > ~/.config/fish/completions/fil.fish`,
		example: `  # Install permanently
  fil completion fish > ~/.config/fish/completions/fil.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		long: `To load completions in your current shell session:

  fil completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your PowerShell profile.`,
		example: `  # Load in current session
  fil completion powershell | Out-String | Invoke-Expression`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fil.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.name + " completion script",
		Long:                  "Generate " + s.name + " completion script for fil.\n\n" + s.long,
		Example:               s.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for figwind.

To load completions:

Bash:
  $ source <(figwind completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ figwind completion bash > /etc/bash_completion.d/figwind
  # macOS:
  $ figwind completion bash > $(brew --prefix)/etc/bash_completion.d/figwind

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ figwind completion zsh > "${fpath[1]}/_figwind"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ figwind completion fish | source

  # To load completions for each session, execute once:
  $ figwind completion fish > ~/.config/fish/completions/figwind.fish

PowerShell:
  PS> figwind completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> figwind completion powershell > figwind.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

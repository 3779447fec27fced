package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fekuna/shopwave-storefront/internal/installprompt"
	"github.com/spf13/cobra"
)

// installSlot holds the install offer for this run. It is filled before every
// command while shell completion is not installed yet.
var installSlot installprompt.Slot

var userConfigDir = os.UserConfigDir

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install bash completion for storefront",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := completionPath()
		if err != nil {
			return err
		}
		return runInstall(cmd.Context(), &installSlot, rootCmd, path, cmd.OutOrStdout())
	},
}

// terminalPrompter asks on the terminal whether to install completion.
type terminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p terminalPrompter) Prompt(ctx context.Context) (installprompt.Outcome, error) {
	fmt.Fprint(p.out, "Install ShopWave shell completion? [y/N] ")
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return installprompt.OutcomeAccepted, nil
	default:
		return installprompt.OutcomeDismissed, nil
	}
}

func completionPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "shopwave", "storefront.bash"), nil
}

// offerInstall puts a prompt in slot unless the completion file already exists.
func offerInstall(slot *installprompt.Slot, path string, in io.Reader, out io.Writer) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	slot.Offer(terminalPrompter{in: in, out: out})
}

func runInstall(ctx context.Context, slot *installprompt.Slot, root *cobra.Command, path string, out io.Writer) error {
	outcome, err := slot.Consume(ctx)
	if errors.Is(err, installprompt.ErrNoPrompt) {
		fmt.Fprintln(out, mutedStyle.Render("Already installed: "+path))
		return nil
	}
	if err != nil {
		return err
	}
	if outcome == installprompt.OutcomeDismissed {
		fmt.Fprintln(out, mutedStyle.Render("Not installed."))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := root.GenBashCompletionV2(f, true); err != nil {
		return fmt.Errorf("write completion: %w", err)
	}

	fmt.Fprintln(out, "Installed. Add this to your shell profile:")
	fmt.Fprintln(out, "  source "+path)
	return nil
}

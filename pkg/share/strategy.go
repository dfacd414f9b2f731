package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CommandStrategy hands the payload to a configured platform share command
// (e.g. "termux-share" on Android, a desktop handler script elsewhere).
// The summary text is piped to the command's stdin.
type CommandStrategy struct {
	Command string
	Args    []string
}

func (s *CommandStrategy) Name() string     { return "command" }
func (s *CommandStrategy) Outcome() Outcome { return OutcomeShared }
func (s *CommandStrategy) Available() bool  { return s.Command != "" }

func (s *CommandStrategy) Share(ctx context.Context, p Payload) error {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stdin = strings.NewReader(p.Text)
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return ErrCancelled
		}
		return fmt.Errorf("share command %q: %w", s.Command, err)
	}
	return nil
}

// clipboardWriters are the clipboard commands probed in order, with the
// arguments each needs to read from stdin.
var clipboardWriters = []struct {
	command string
	args    []string
}{
	{command: "pbcopy"},
	{command: "wl-copy"},
	{command: "xclip", args: []string{"-selection", "clipboard"}},
	{command: "xsel", args: []string{"--clipboard", "--input"}},
}

// ClipboardStrategy copies the summary text through the first clipboard
// writer found on PATH.
type ClipboardStrategy struct{}

func (s *ClipboardStrategy) Name() string     { return "clipboard" }
func (s *ClipboardStrategy) Outcome() Outcome { return OutcomeCopied }

func (s *ClipboardStrategy) Available() bool {
	_, _, ok := s.resolve()
	return ok
}

func (s *ClipboardStrategy) resolve() (string, []string, bool) {
	for _, w := range clipboardWriters {
		if path, err := exec.LookPath(w.command); err == nil {
			return path, w.args, true
		}
	}
	return "", nil, false
}

func (s *ClipboardStrategy) Share(ctx context.Context, p Payload) error {
	path, args, ok := s.resolve()
	if !ok {
		return fmt.Errorf("no clipboard writer on PATH")
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(p.Text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard write via %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SpoolStrategy is the manual fallback: the summary is written to a file in
// the spool directory for the user to copy from.
type SpoolStrategy struct {
	Dir string

	now func() time.Time
}

func (s *SpoolStrategy) Name() string     { return "spool" }
func (s *SpoolStrategy) Outcome() Outcome { return OutcomeCopied }
func (s *SpoolStrategy) Available() bool  { return s.Dir != "" }

func (s *SpoolStrategy) Share(_ context.Context, p Payload) error {
	clock := s.now
	if clock == nil {
		clock = time.Now
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create spool dir: %w", err)
	}
	name := fmt.Sprintf("eventsnap-share-%d.txt", clock().UnixNano())
	if err := os.WriteFile(filepath.Join(s.Dir, name), []byte(p.Text), 0o644); err != nil {
		return fmt.Errorf("write spool file: %w", err)
	}
	return nil
}

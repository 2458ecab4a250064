package services

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/config"
)

// ContactNotification carries a stored contact-form submission to the
// notification side effect.
type ContactNotification struct {
	Name    string
	Email   string
	Message string
}

// Notifier delivers a best-effort notification for a contact submission.
// Failures are the caller's to log; the submission itself is already durable
// by the time Notify runs.
type Notifier interface {
	Notify(ctx context.Context, n ContactNotification) error
}

// NewNotifier selects the notification backend from configuration:
// NOTIFY_MODE=resend uses the Resend HTTP API, anything else spawns the
// configured command.
func NewNotifier(cfg map[string]string) Notifier {
	if config.GetString(cfg, "NOTIFY_MODE", "command") == "resend" {
		return NewResendNotifier(cfg)
	}
	return NewCommandNotifier(cfg)
}

// CommandNotifier invokes an external program with the submission passed as
// an argument vector. Arguments are never interpolated into a shell string,
// so metacharacters in the message cannot alter the invoked command.
type CommandNotifier struct {
	command string
	args    []string
	timeout time.Duration
}

const defaultNotifyCommand = "python3 server/send_email.py"

func NewCommandNotifier(cfg map[string]string) CommandNotifier {
	commandLine := config.GetString(cfg, "NOTIFY_COMMAND", defaultNotifyCommand)
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		// A whitespace-only NOTIFY_COMMAND gets past the empty-value check.
		fields = strings.Fields(defaultNotifyCommand)
	}

	return CommandNotifier{
		command: fields[0],
		args:    fields[1:],
		timeout: config.GetDuration(cfg, "NOTIFY_TIMEOUT_SECONDS", 30*time.Second),
	}
}

func (c CommandNotifier) Notify(ctx context.Context, n ContactNotification) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string{}, c.args...),
		"--name", n.Name,
		"--email", n.Email,
		"--message", n.Message,
	)

	cmd := exec.CommandContext(ctx, c.command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("notification command failed: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}

	log.Debug().Str("command", c.command).Msg("Contact notification sent")
	return nil
}

package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"encore/internal/config"
)

// ProgressUpdate captures recognition progress for one image.
type ProgressUpdate struct {
	Percent float64
	Message string
}

// Client defines recognition behaviour.
type Client interface {
	Recognize(ctx context.Context, imagePath string, progress func(ProgressUpdate)) (string, error)
}

// CLI wraps the tesseract command-line engine.
type CLI struct {
	binary        string
	languages     []string
	pageSegMode   int
	charWhitelist string
	timeout       time.Duration

	commandRunner func(ctx context.Context, name string, args ...string) (string, error)
}

// Option customises the CLI client.
type Option func(*CLI)

// WithBinary overrides the engine binary.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithCommandRunner sets a custom command runner (primarily for tests).
func WithCommandRunner(runner func(ctx context.Context, name string, args ...string) (string, error)) Option {
	return func(c *CLI) {
		c.commandRunner = runner
	}
}

// NewCLI constructs a recognition client from configuration.
func NewCLI(cfg config.OCR, opts ...Option) *CLI {
	c := &CLI{
		binary:        cfg.Binary,
		languages:     append([]string(nil), cfg.Languages...),
		pageSegMode:   cfg.PageSegMode,
		charWhitelist: cfg.CharWhitelist,
		timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	if c.binary == "" {
		c.binary = "tesseract"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recognize runs the engine on one image and returns the recognized text.
// Progress is reported at coarse milestones: 0 when recognition is accepted,
// 25 once the engine is running, 90 when output is collected, and 100 on
// completion.
func (c *CLI) Recognize(ctx context.Context, imagePath string, progress func(ProgressUpdate)) (string, error) {
	if strings.TrimSpace(imagePath) == "" {
		return "", errors.New("image path required")
	}
	notify := func(percent float64, message string) {
		if progress != nil {
			progress(ProgressUpdate{Percent: percent, Message: message})
		}
	}
	notify(0, "queued")

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := c.buildArgs(imagePath)
	notify(25, "recognizing")

	text, err := c.run(ctx, c.binary, args...)
	if err != nil {
		return "", fmt.Errorf("recognize %s: %w", imagePath, err)
	}
	notify(90, "collecting text")

	notify(100, "done")
	return text, nil
}

func (c *CLI) buildArgs(imagePath string) []string {
	args := []string{imagePath, "stdout"}
	if len(c.languages) > 0 {
		args = append(args, "-l", strings.Join(c.languages, "+"))
	}
	if c.pageSegMode > 0 {
		args = append(args, "--psm", strconv.Itoa(c.pageSegMode))
	}
	if c.charWhitelist != "" {
		args = append(args, "-c", "tessedit_char_whitelist="+c.charWhitelist)
	}
	return args
}

func (c *CLI) run(ctx context.Context, name string, args ...string) (string, error) {
	if c.commandRunner != nil {
		return c.commandRunner(ctx, name, args...)
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, detail)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return stdout.String(), nil
}

package report

import (
	"fmt"
	"io"
)

// ANSI escape sequences for colorized output.
const (
	ansiGreen = "\033[92m"
	ansiRed   = "\033[91m"
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// RenderConfig defines rendering settings.
type RenderConfig struct {
	Color bool
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// WithColor toggles ANSI color in the rendered output.
func WithColor(enabled bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Color = enabled
	}
}

// ApplyRenderOptions applies zero or more options to the default config.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	var cfg RenderConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Render writes a per-check pass/fail line for every check followed by
// the aggregate counts and success rate. Formatting is cosmetic; the
// functional contract lives in [Summary].
func Render(w io.Writer, s Summary, opts ...RenderOption) error {
	cfg := ApplyRenderOptions(opts...)

	for _, c := range s.Checks {
		var err error

		if c.Passed {
			_, err = fmt.Fprintf(w, "%s %s\n", cfg.paint(ansiGreen, "PASS"), c.Name)
		} else {
			line := c.Name
			if c.Detail != "" {
				line += ": " + c.Detail
			}

			_, err = fmt.Fprintf(w, "%s %s\n", cfg.paint(ansiRed, "FAIL"), line)
		}

		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s: %d total, %d passed, %d failed (%.1f%%)\n",
		cfg.paint(ansiBold, "summary"), s.Total, s.Passed, s.Failed, s.SuccessRate())

	return err
}

// paint wraps text in an ANSI color when color is enabled.
func (cfg RenderConfig) paint(color, text string) string {
	if !cfg.Color {
		return text
	}

	return color + text + ansiReset
}

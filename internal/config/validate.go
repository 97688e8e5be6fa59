package config

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/substats/internal/charset"
	"github.com/patrickprogramme/substats/internal/stats"
)

// Validate vérifie les valeurs qui ne peuvent pas être corrigées silencieusement.
// Toutes les erreurs sont regroupées.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}
	var errs []error

	if _, err := stats.ParseStrategy(c.CountStrategy); err != nil {
		errs = append(errs, fmt.Errorf("count_strategy: %w", err))
	}
	if c.WideLines.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("wide_lines.font_size doit être > 0 (reçu %v)", c.WideLines.FontSize))
	}
	if !charset.Supported(c.Export.Encoding) {
		errs = append(errs, fmt.Errorf("export.encoding inconnu : %q", c.Export.Encoding))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level inconnu : %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

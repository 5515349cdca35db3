package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect run
	// behavior, keep these in sync:
	// - CLI flags in internal/cli/update.go
	// - config file keys in internal/config/file.go
	Target  Target
	Notice  Notice
	Rules   Rules
	Output  Output
	Runtime Runtime
}

type Target struct {
	// Root is the directory tree to operate on (see --root).
	Root string

	// ExcludeDirs prunes directories by base name using Go path.Match style
	// (see --exclude-dir). Pruned directories are never descended into, at
	// any depth. User values extend the built-in set.
	ExcludeDirs []string

	// ExcludeFiles skips files by base name using Go path.Match style
	// (see --exclude-file). User values extend the built-in set.
	ExcludeFiles []string

	// IgnoreAnomalies suppresses anomaly findings for matching paths
	// (see --ignore-anomaly). If a pattern contains '/', it matches the
	// root-relative path; otherwise it matches the file name or any
	// directory on its path.
	IgnoreAnomalies []string

	// DryRun enumerates the files a run would process and stops before
	// reading any of them (see --dry-run).
	DryRun bool
}

type Notice struct {
	// Holder is the copyright holder token a notice must name (see --holder).
	Holder string

	// Year overrides the target year for the run (see --year). 0 means the
	// system clock's year, read once per run. The stale year a rewrite
	// looks for is always Year-1.
	Year int
}

type Rules struct {
	// Selector selects which rewrite rules run.
	// Empty means all rules; otherwise it is a comma-separated list of rule IDs (see --rules).
	Selector string
}

type Output struct {
	// ConsoleFormat controls the human-facing console sink format (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string

	// ConsoleFilterStatus filters console output by result status (see --console-filter-status).
	// Allowed values: UPDATED, OUTDATED, CURRENT, ANOMALY, ERROR.
	// Empty means the command's default filter.
	ConsoleFilterStatus []string

	// Report writes a Markdown report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string

	// Emit writes an additional structured event stream to stdout (see --emit).
	// Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink (see --no-console).
	// Use with --emit/--out/--report for machine-readable output.
	NoConsole bool
}

type Runtime struct {
	// Verbose widens the default console filter to every status, so current
	// and rewritten lines show alongside anomalies.
	Verbose bool
}

func New() *Config {
	return &Config{
		Target: Target{
			Root:         ".",
			ExcludeDirs:  []string{".git", "build", "data", "_trial_temp*"},
			ExcludeFiles: []string{".#*", "#*#", "*~", "*.pyc", "*.log"},
		},
		Notice: Notice{
			Holder: "Apple",
		},
		Output: Output{
			ConsoleFormat: "text",
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Target.ExcludeDirs = splitCommaList(c.Target.ExcludeDirs)
	c.Target.ExcludeFiles = splitCommaList(c.Target.ExcludeFiles)
	c.Target.IgnoreAnomalies = splitCommaList(c.Target.IgnoreAnomalies)
	c.Output.ConsoleFilterStatus = splitCommaList(c.Output.ConsoleFilterStatus)

	// Target validation
	if strings.TrimSpace(c.Target.Root) == "" {
		return errors.New("--root must not be empty")
	}
	c.Target.Root = filepath.Clean(strings.TrimSpace(c.Target.Root))

	for _, p := range c.Target.ExcludeDirs {
		if !validPattern(p) {
			return fmt.Errorf("invalid --exclude-dir pattern %q", p)
		}
	}
	for _, p := range c.Target.ExcludeFiles {
		if !validPattern(p) {
			return fmt.Errorf("invalid --exclude-file pattern %q", p)
		}
	}
	for _, p := range c.Target.IgnoreAnomalies {
		if !validPattern(p) {
			return fmt.Errorf("invalid --ignore-anomaly pattern %q", p)
		}
	}

	// Notice validation
	c.Notice.Holder = strings.TrimSpace(c.Notice.Holder)
	if c.Notice.Holder == "" {
		return errors.New("--holder must not be empty")
	}
	if c.Notice.Year != 0 && (c.Notice.Year < 1000 || c.Notice.Year > 9999) {
		return fmt.Errorf("unsupported --year: %d (must be a four-digit year)", c.Notice.Year)
	}

	// Output validation
	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		return errors.New("--console-format must be one of: text, json, ndjson")
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for i, status := range c.Output.ConsoleFilterStatus {
		v := strings.ToUpper(strings.TrimSpace(status))
		switch v {
		case "UPDATED", "OUTDATED", "CURRENT", "ANOMALY", "ERROR":
			c.Output.ConsoleFilterStatus[i] = v
		default:
			return fmt.Errorf("unsupported --console-filter-status: %s (must be one of: UPDATED, OUTDATED, CURRENT, ANOMALY, ERROR)", status)
		}
	}

	for _, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v == "" {
			return errors.New("--emit must be one of: json, ndjson")
		}
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", v)
		}
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else {
			if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
				return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
			}
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// validPattern reports whether p is a well-formed path.Match pattern.
func validPattern(p string) bool {
	_, err := path.Match(p, "probe")
	return err == nil
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

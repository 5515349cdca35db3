package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestNew_CarriesBuiltInExclusions(t *testing.T) {
	cfg := New()

	wantDirs := []string{".git", "build", "data", "_trial_temp*"}
	if !reflect.DeepEqual(cfg.Target.ExcludeDirs, wantDirs) {
		t.Fatalf("ExcludeDirs mismatch: got %v want %v", cfg.Target.ExcludeDirs, wantDirs)
	}

	wantFiles := []string{".#*", "#*#", "*~", "*.pyc", "*.log"}
	if !reflect.DeepEqual(cfg.Target.ExcludeFiles, wantFiles) {
		t.Fatalf("ExcludeFiles mismatch: got %v want %v", cfg.Target.ExcludeFiles, wantFiles)
	}

	if cfg.Notice.Holder != "Apple" {
		t.Fatalf("Holder mismatch: got %q want %q", cfg.Notice.Holder, "Apple")
	}
}

func TestValidate_NormalizesCommaDelimitedExclusions(t *testing.T) {
	cfg := New()
	cfg.Target.ExcludeDirs = []string{"vendor, node_modules", "tmp-*", ",,"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	want := []string{"vendor", "node_modules", "tmp-*"}
	if !reflect.DeepEqual(cfg.Target.ExcludeDirs, want) {
		t.Fatalf("ExcludeDirs normalized mismatch: got %v want %v", cfg.Target.ExcludeDirs, want)
	}
}

func TestValidate_CleansRoot(t *testing.T) {
	cfg := New()
	cfg.Target.Root = "  ./src/./tree/ "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	want := filepath.Join("src", "tree")
	if cfg.Target.Root != want {
		t.Fatalf("Root mismatch: got %q want %q", cfg.Target.Root, want)
	}
}

func TestValidate_RejectsEmptyRoot(t *testing.T) {
	cfg := New()
	cfg.Target.Root = "   "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RejectsEmptyHolder(t *testing.T) {
	cfg := New()
	cfg.Notice.Holder = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BoundsYearOverride(t *testing.T) {
	cfg := New()
	cfg.Notice.Year = 99
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}

	cfg = New()
	cfg.Notice.Year = 2026
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	cfg = New()
	cfg.Notice.Year = 0 // system clock
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
}

func TestValidate_RejectsMalformedPatterns(t *testing.T) {
	cfg := New()
	cfg.Target.ExcludeFiles = append(cfg.Target.ExcludeFiles, "[broken")
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_NormalizesConsoleFilterStatus(t *testing.T) {
	cfg := New()
	cfg.Output.ConsoleFilterStatus = []string{"anomaly, updated"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	want := []string{"ANOMALY", "UPDATED"}
	if !reflect.DeepEqual(cfg.Output.ConsoleFilterStatus, want) {
		t.Fatalf("ConsoleFilterStatus mismatch: got %v want %v", cfg.Output.ConsoleFilterStatus, want)
	}
}

func TestValidate_RejectsUnknownConsoleFilterStatus(t *testing.T) {
	cfg := New()
	cfg.Output.ConsoleFilterStatus = []string{"PASS"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RejectsUnknownConsoleFormat(t *testing.T) {
	cfg := New()
	cfg.Output.ConsoleFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_InfersOutFormatFromExtension(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		format  string
		want    string
		wantErr bool
	}{
		{name: "json_extension", out: "results.json", want: "json"},
		{name: "ndjson_extension", out: "results.ndjson", want: "ndjson"},
		{name: "explicit_format_wins", out: "results.dat", format: "ndjson", want: "ndjson"},
		{name: "unknown_extension", out: "results.dat", wantErr: true},
		{name: "missing_extension", out: "results", wantErr: true},
		{name: "bad_explicit_format", out: "results.json", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Output.Out = tt.out
			cfg.Output.OutFormat = tt.format

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() returned error: %v", err)
			}
			if cfg.Output.OutFormat != tt.want {
				t.Fatalf("OutFormat mismatch: got %q want %q", cfg.Output.OutFormat, tt.want)
			}
		})
	}
}

func TestValidate_RejectsUnknownEmitFormat(t *testing.T) {
	cfg := New()
	cfg.Output.Emit = []string{"yaml"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

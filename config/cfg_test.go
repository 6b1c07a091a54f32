package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Indent != "  " {
		t.Errorf("Default indent = %q, want two spaces", cfg.Output.Indent)
	}
	if cfg.Output.Compact {
		t.Error("Compact output must be off by default")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
output:
  indent: "\t"
  compact: true
  default_header: made by selb
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(dir, "logs", "selb.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Indent != "\t" || !cfg.Output.Compact || cfg.Output.DefaultHeader != "made by selb" {
		t.Errorf("Output section not loaded: %+v", cfg.Output)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("Expected log directory to be created by sanitizer: %v", err)
	}

	opts := cfg.Output.FormatOptions()
	if opts.Indent != "\t" || !opts.Compact {
		t.Errorf("FormatOptions() = %+v", opts)
	}
}

func TestLoadConfiguration_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfiguration(writeConfig(t, "version: 1\noutput:\n  compact: true\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if !cfg.Output.Compact {
		t.Error("Expected compact from file")
	}
	if cfg.Output.Indent != "  " {
		t.Errorf("Indent default lost: %q", cfg.Output.Indent)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\noutput:\n  compact: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"indent too long", "version: 1\noutput:\n  indent: \"            \"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	// empty file keeps defaults
	if cfg, err := LoadConfiguration(writeConfig(t, "")); err != nil || cfg.Version != 1 {
		t.Errorf("Empty file: cfg = %+v, err = %v", cfg, err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "default_header") {
		t.Error("Prepared config misses output section")
	}
	cfg := &Config{}
	if err := decode(data, cfg); err != nil {
		t.Fatalf("Prepared config cannot be decoded: %v", err)
	}
	if err := check(cfg); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Output.DefaultHeader = "dumped"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2 := &Config{}
	if err := decode(data, cfg2); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output != cfg.Output || cfg2.Logging != cfg.Logging || cfg2.Reporting != cfg.Reporting {
		t.Errorf("Mismatch after dump/load: %+v vs %+v", cfg2, cfg)
	}
}

func TestLoadConfiguration_NameTemplateKept(t *testing.T) {
	path := writeConfig(t, `version: 1
output:
  file_name_template: "{{ .Recipe | upper }}"
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Output.NameTemplate != "{{ .Recipe | upper }}" {
		t.Errorf("Name template = %q, want it unexpanded", cfg.Output.NameTemplate)
	}
}

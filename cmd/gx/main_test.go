package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mikey-austin/gx/internal/adapters/config"
	"github.com/mikey-austin/gx/internal/core"
)

func runGX(t *testing.T, args ...string) (string, error) {
	t.Helper()
	absent := filepath.Join(t.TempDir(), "absent.toml")
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", absent}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPrintlnToStdout(t *testing.T) {
	out, err := runGX(t, "println", "bool:true", "int:42", "x")
	if err != nil {
		t.Fatalf("println: %v", err)
	}
	if out != "true42x\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPrintNegativeLiteral(t *testing.T) {
	out, err := runGX(t, "print", "int:-7", "f32:3.5")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "-73.500000" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBarePrintlnWritesTerminator(t *testing.T) {
	out, err := runGX(t, "println")
	if err != nil {
		t.Fatalf("println: %v", err)
	}
	if out != "\n" {
		t.Fatalf("unexpected output %q", out)
	}
	out, err = runGX(t, "print")
	if err != nil || out != "" {
		t.Fatalf("expected empty print, got %q %v", out, err)
	}
}

func TestPrintlnToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if _, err := runGX(t, "--file", path, "println", "str:first"); err != nil {
		t.Fatalf("println: %v", err)
	}
	if _, err := runGX(t, "--file", path, "--append", "demo", "--age", "3"); err != nil {
		t.Fatalf("demo: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	expected := "first\nage: 3, health: 0.750000\nage: 4, health: 0.750000\n"
	if string(got) != expected {
		t.Fatalf("unexpected file %q", got)
	}
}

func TestBadLiteralExitsWithUsage(t *testing.T) {
	out, err := runGX(t, "println", "int:seven")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestBadLiteralKeepsOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("precious\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := runGX(t, "--file", path, "println", "int:seven")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "precious\n" {
		t.Fatalf("expected file untouched, got %q", got)
	}
}

func TestBadLiteralSkipsBrokerConnect(t *testing.T) {
	_, err := runGX(t, "--sink", "mqtt", "--broker", "mqtt://127.0.0.1:1", "--timeout", "200ms", "print", "bool:maybe")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
}

func TestUnknownSink(t *testing.T) {
	_, err := runGX(t, "--sink", "printer", "println", "x")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
}

func TestMQTTSinkRequiresBroker(t *testing.T) {
	_, err := runGX(t, "--sink", "mqtt", "println", "x")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
}

func TestBadFlagExitsWithUsage(t *testing.T) {
	_, err := runGX(t, "--no-such-flag", "kinds")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage exit code, got %v", err)
	}
}

func TestInspectJSON(t *testing.T) {
	out, err := runGX(t, "--json", "inspect", "bool:false", "f64:1")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var result core.InspectResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if result.Output != "false1.000000" || len(result.Values) != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestKinds(t *testing.T) {
	out, err := runGX(t, "--no-color", "kinds")
	if err != nil {
		t.Fatalf("kinds: %v", err)
	}
	for _, kind := range []string{"bool", "int", "float32", "float64", "text"} {
		if !strings.Contains(out, kind) {
			t.Fatalf("expected %s in %q", kind, out)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{}
	cfg.Output.Sink = "mqtt"
	cfg.Log.Level = "error"
	applyOverrides(&cfg, overrides{topic: "gx/alt", verbose: true})
	if cfg.Output.Sink != "mqtt" || cfg.MQTT.Topic != "gx/alt" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	cfg = config.Config{}
	applyOverrides(&cfg, overrides{file: "/tmp/out"})
	if cfg.Output.Sink != "file" {
		t.Fatalf("expected file sink implied by --file")
	}

	cfg = config.Config{}
	applyOverrides(&cfg, overrides{})
	if cfg.Output.Sink != "stdout" || cfg.MQTT.Topic != "gx/out" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestResolveTimeout(t *testing.T) {
	if resolveTimeout(time.Second, 500) != time.Second {
		t.Fatalf("expected flag to win")
	}
	if resolveTimeout(0, 500) != 500*time.Millisecond {
		t.Fatalf("expected config timeout")
	}
	if resolveTimeout(0, 0) != defaultTimeout {
		t.Fatalf("expected default timeout")
	}
}

func TestBrokerConfigFlagsOverride(t *testing.T) {
	cfg := brokerConfig(config.BrokerConfig{Listen: "127.0.0.1:1883", Username: "a", Password: "b"},
		brokerFlags{listen: "127.0.0.1:2883", username: "c", password: "d"})
	if cfg.Listen != "127.0.0.1:2883" || cfg.Username != "c" || cfg.Password != "d" {
		t.Fatalf("unexpected broker config %+v", cfg)
	}
}

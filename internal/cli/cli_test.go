package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"todocards/internal/config"
)

func runCLI(t *testing.T, args ...string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODOCARDS_FORMAT", "")
	t.Setenv("TODOCARDS_THEME", "")
	t.Setenv("TODOCARDS_DEBUG_LOG", "")
	t.Setenv("TODOCARDS_CONFIG", "")

	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestSeed_JSONEnvelope(t *testing.T) {
	stdout, stderr, err := runCLI(t, "seed")
	if err != nil {
		t.Fatalf("seed failed: %v\nstderr:\n%s", err, stderr)
	}
	var env struct {
		Data []struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Project string `json:"project"`
		} `json:"data"`
		Hints []string `json:"_hints"`
	}
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\nstdout:\n%s", err, stdout)
	}
	if len(env.Data) != 2 {
		t.Fatalf("expected 2 seed cards; got %d", len(env.Data))
	}
	if env.Data[0].Title != "Clean up files" || env.Data[0].Project != "Office Chores" {
		t.Fatalf("unexpected first card: %#v", env.Data[0])
	}
	if env.Data[1].Title != "Walk dog" || env.Data[1].Project != "Life Chores" {
		t.Fatalf("unexpected second card: %#v", env.Data[1])
	}
	if env.Data[0].ID == "" || env.Data[0].ID == env.Data[1].ID {
		t.Fatalf("expected distinct generated ids; got %q and %q", env.Data[0].ID, env.Data[1].ID)
	}
	if len(env.Hints) == 0 {
		t.Fatalf("expected hints in envelope")
	}
}

func TestSeed_EDN(t *testing.T) {
	stdout, _, err := runCLI(t, "--format", "edn", "seed")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	out := string(stdout)
	if !strings.HasPrefix(out, "{:data [{:id ") || !strings.Contains(out, `:title "Walk dog" :project "Life Chores"`) {
		t.Fatalf("unexpected edn output:\n%s", out)
	}
}

func TestSeed_UnknownFormat(t *testing.T) {
	if _, _, err := runCLI(t, "--format", "xml", "seed"); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestDocs(t *testing.T) {
	stdout, _, err := runCLI(t, "docs")
	if err != nil {
		t.Fatalf("docs failed: %v", err)
	}
	if !strings.Contains(string(stdout), `"keys"`) {
		t.Fatalf("expected topic list to contain keys; got %s", stdout)
	}

	stdout, _, err = runCLI(t, "docs", "keys", "--raw")
	if err != nil {
		t.Fatalf("docs keys failed: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("expected raw markdown; got:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, "docs", "about")
	if err != nil {
		t.Fatalf("docs about failed: %v", err)
	}
	if !strings.Contains(string(stdout), "todocards") {
		t.Fatalf("expected rendered about topic; got:\n%s", stdout)
	}

	if _, _, err := runCLI(t, "docs", "nope"); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

func TestRoot_RejectsBadTheme(t *testing.T) {
	if _, _, err := runCLI(t, "--theme", "neon", "seed"); err == nil {
		t.Fatalf("expected invalid theme to fail")
	}
}

func TestRoot_UnwritableDebugLogFails(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "file")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := runCLI(t, "--debug-log", filepath.Join(parent, "debug.log"), "seed")
	if err == nil || !strings.Contains(err.Error(), "debug log") {
		t.Fatalf("expected debug log open error; got %v", err)
	}
}

func TestSessionArgs(t *testing.T) {
	got := sessionArgs(config.Config{Theme: "dark", DebugLog: "/tmp/server.log", File: "/etc/todocards.yaml"})
	want := []string{"--theme", "dark", "--debug-log=", "--config", "/etc/todocards.yaml"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected session args:\n got: %q\nwant: %q", got, want)
	}

	got = sessionArgs(config.Config{})
	want = []string{"--theme", "auto", "--debug-log="}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected session args without config file:\n got: %q\nwant: %q", got, want)
	}
}

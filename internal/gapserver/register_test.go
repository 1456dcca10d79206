package gapserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{})
	os.Exit(m.Run())
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "test"}, nil)
	RegisterTools(server)
}

func TestLoadCVText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte("Jane Smith\nSKILLS\nGo"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadCVText("inline text", path)
	if err != nil || got != "inline text" {
		t.Errorf("loadCVText(text, path) = %q, %v; want inline text", got, err)
	}

	got, err = loadCVText("", path)
	if err != nil || !strings.Contains(got, "Jane Smith") {
		t.Errorf("loadCVText(path) = %q, %v", got, err)
	}

	if _, err := loadCVText("", ""); err == nil {
		t.Error("loadCVText with neither input should fail")
	}

	if _, err := loadCVText("", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("loadCVText with missing file should fail")
	}
}

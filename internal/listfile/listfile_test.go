package listfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadDropsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	if err := os.WriteFile(path, []byte("abc\n\nxy\r\n\n0-_\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []string{"abc", "xy", "0-_"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Read = %v, want %v", lines, want)
	}
}

func TestReadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	lines, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines from missing file, got %v", lines)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteJoinsWithNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := Write(path, []string{"a", "ab", "b"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nab\nb" {
		t.Errorf("file content = %q, want %q", data, "a\nab\nb")
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := Write(path, []string{"old", "content", "longer"}); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, []string{"new"}); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("file content = %q, want %q", data, "new")
	}
}

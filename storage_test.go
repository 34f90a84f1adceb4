package vellum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackingStoreOpenCreatesMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "new.txt")

	fbs, err := OpenFileBackingStore(path)
	if err != nil {
		t.Fatalf("OpenFileBackingStore failed: %v", err)
	}
	defer fbs.Close()

	length, err := fbs.Length()
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if length != 0 {
		t.Errorf("Length = %d, want 0", length)
	}
	if fbs.Tell() != 0 {
		t.Errorf("Tell() = %d, want 0", fbs.Tell())
	}
}

func TestFileBackingStoreReadAtDoesNotMovePosition(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(path, []byte("Hello World"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fbs, err := OpenFileBackingStore(path)
	if err != nil {
		t.Fatalf("OpenFileBackingStore failed: %v", err)
	}
	defer fbs.Close()

	buf := make([]byte, 5)
	n, err := fbs.ReadAt(6, 5, buf)
	if err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if n != 5 || string(buf) != "World" {
		t.Errorf("ReadAt = %q, want %q", string(buf[:n]), "World")
	}
	if fbs.Tell() != 0 {
		t.Errorf("Tell() after ReadAt = %d, want 0", fbs.Tell())
	}
}

func TestFileBackingStoreViewAdvancesPosition(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(path, []byte("Hello World"), 0644)

	fbs, _ := OpenFileBackingStore(path)
	defer fbs.Close()

	buf := make([]byte, 5)
	n, err := fbs.View(5, buf)
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if n != 5 || string(buf) != "Hello" {
		t.Errorf("View = %q, want %q", string(buf[:n]), "Hello")
	}
	if fbs.Tell() != 5 {
		t.Errorf("Tell() after View = %d, want 5", fbs.Tell())
	}
}

func TestFileBackingStoreWriteExtendsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(path, []byte("Hi"), 0644)

	fbs, _ := OpenFileBackingStore(path)
	defer fbs.Close()

	fbs.Go(2)
	if err := fbs.Write([]byte(" there")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	length, _ := fbs.Length()
	if length != 8 {
		t.Errorf("Length after Write = %d, want 8", length)
	}

	buf := make([]byte, 8)
	n, _ := fbs.ReadAt(0, 8, buf)
	if string(buf[:n]) != "Hi there" {
		t.Errorf("file content = %q, want %q", string(buf[:n]), "Hi there")
	}
}

func TestFileBackingStoreTruncateHere(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(path, []byte("Hello World"), 0644)

	fbs, _ := OpenFileBackingStore(path)
	defer fbs.Close()

	fbs.Go(5)
	if err := fbs.TruncateHere(); err != nil {
		t.Fatalf("TruncateHere failed: %v", err)
	}
	length, _ := fbs.Length()
	if length != 5 {
		t.Errorf("Length after TruncateHere = %d, want 5", length)
	}

	buf := make([]byte, 5)
	n, _ := fbs.ReadAt(0, 5, buf)
	if string(buf[:n]) != "Hello" {
		t.Errorf("file content = %q, want %q", string(buf[:n]), "Hello")
	}
}

func TestFileBackingStoreToStartToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(path, []byte("Hello World"), 0644)

	fbs, _ := OpenFileBackingStore(path)
	defer fbs.Close()

	fbs.Go(4)
	fbs.ToStart()
	if fbs.Tell() != 0 {
		t.Errorf("Tell() after ToStart = %d, want 0", fbs.Tell())
	}
	if err := fbs.ToEnd(); err != nil {
		t.Fatalf("ToEnd failed: %v", err)
	}
	if fbs.Tell() != 11 {
		t.Errorf("Tell() after ToEnd = %d, want 11", fbs.Tell())
	}
}

package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"checksum.md5", "DDPMS", "CDTEXT.BIN", "DDPID"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
		if e.Name() == "sub" {
			if e.IsRegular() || !e.IsDir() {
				t.Error("subはディレクトリとして扱われるべき")
			}
		} else if !e.IsRegular() {
			t.Errorf("%s は通常ファイルとして扱われるべき", e.Name())
		}
	}

	want := []string{"CDTEXT.BIN", "DDPID", "DDPMS", "checksum.md5", "sub"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("ReadDir() 順序が一致しません (-want +got):\n%s", diff)
	}
}

func TestOSFileSystem_ReadDir_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("シンボリックリンクのテストはWindowsではスキップ")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("CDTEXT"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("シンボリックリンクを作成できません: %v", err)
	}

	entries, err := NewOSFileSystem().ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if !e.IsRegular() {
			t.Errorf("%s は通常ファイルとして扱われるべき", e.Name())
		}
	}
}

func TestOSFileSystem_WriteFileTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CDTEXT.BIN")
	fs := NewOSFileSystem()

	if err := fs.WriteFile(path, make([]byte, 36), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(path, make([]byte, 18), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 18 {
		t.Errorf("Size() = %d, want 18", info.Size())
	}
	if info.IsDir() {
		t.Error("ファイルはディレクトリではない")
	}
}

func TestOSFileSystem_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DDPMS")
	if err := os.WriteFile(path, []byte("map stream"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	r, err := fs.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "map stream" {
		t.Errorf("内容 = %q", b)
	}

	if _, err := fs.Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("存在しないファイルはエラーになるべき")
	}
	if !fs.FileExists(path) {
		t.Error("FileExists() = false")
	}
}

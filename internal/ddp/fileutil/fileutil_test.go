package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{name: "ASCII", data: []byte("000036 CDTEXT\n"), want: "000036 CDTEXT\n", wantOK: true},
		{name: "マルチバイト", data: []byte("東方 CDTEXT"), want: "東方 CDTEXT", wantOK: true},
		{name: "空データ", data: []byte{}, want: "", wantOK: true},
		{name: "不正なUTF-8", data: []byte{0x87, 'C', 'D'}, wantOK: false},
		{name: "途中で切れたマルチバイト", data: []byte{'C', 0xE6, 0x9D}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeText(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "CDTEXT.BIN")
	if err := os.WriteFile(file, []byte{0x87}, 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("存在するファイルはtrue")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("存在しないファイルはfalse")
	}
}

func TestPerm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DDPMS")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	if got := Perm(fs, path); got != 0600 {
		t.Errorf("Perm() = %o, want 600", got)
	}
	if got := Perm(fs, filepath.Join(dir, "missing")); got != DefaultPerm {
		t.Errorf("Perm() = %o, want %o", got, DefaultPerm)
	}
}

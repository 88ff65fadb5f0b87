package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	ddperrors "github.com/shiroemons/ddpclassicalfix/internal/ddp/errors"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/mocks"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      Config
		wantError error
	}{
		{
			name: "フォルダのみ",
			args: []string{"/ddp/album"},
			want: Config{Folder: "/ddp/album"},
		},
		{
			name: "末尾のスラッシュを除去する",
			args: []string{"/ddp/album/"},
			want: Config{Folder: "/ddp/album"},
		},
		{
			name: "ロングオプション",
			args: []string{"--debug", "--dry-run", "/ddp/album"},
			want: Config{Folder: "/ddp/album", DebugMode: true, DryRun: true},
		},
		{
			name: "ショートオプション",
			args: []string{"-d", "-n", "album"},
			want: Config{Folder: "album", DebugMode: true, DryRun: true},
		},
		{
			name: "バージョン表示はフォルダ不要",
			args: []string{"-v"},
			want: Config{ShowVersion: true},
		},
		{
			name:      "引数なし",
			args:      []string{},
			wantError: ErrUsage,
		},
		{
			name:      "引数が多すぎる",
			args:      []string{"a", "b"},
			wantError: ErrUsage,
		},
		{
			name:      "ヘルプ",
			args:      []string{"-h"},
			wantError: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, err := ParseFlags(tt.args, &out)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("error = %v, want %v", err, tt.wantError)
				}
				if !strings.Contains(out.String(), "<DDP_FOLDER>") {
					t.Errorf("Usageが出力されていません: %q", out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("Config = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestErrUsage_Message(t *testing.T) {
	msg := ErrUsage.Error()
	if strings.HasPrefix(msg, "Usage") || strings.Contains(msg, "\n") {
		t.Errorf("エラーメッセージは小文字で始まる1行であるべき: %q", msg)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	var out bytes.Buffer
	if _, err := ParseFlags([]string{"--unknown", "x"}, &out); err == nil {
		t.Error("未知のフラグはエラーになるべき")
	}
}

func TestHandleVersion(t *testing.T) {
	var buf bytes.Buffer
	if !HandleVersion(true, &buf) {
		t.Error("trueを返すべき")
	}
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("出力 = %q", buf.String())
	}

	buf.Reset()
	if HandleVersion(false, &buf) {
		t.Error("falseを返すべき")
	}
	if buf.Len() != 0 {
		t.Errorf("何も出力しないべき: %q", buf.String())
	}
}

func TestConfig_Validate(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Dirs["/ddp"] = true
	fs.Files["/ddp/CDTEXT.BIN"] = []byte{0x87}

	tests := []struct {
		name      string
		folder    string
		wantError error
	}{
		{name: "存在するディレクトリ", folder: "/ddp"},
		{name: "存在しないパス", folder: "/missing", wantError: ddperrors.ErrFolderNotFound},
		{name: "ファイル", folder: "/ddp/CDTEXT.BIN", wantError: ddperrors.ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Folder: tt.folder}
			err := cfg.Validate(fs)
			if tt.wantError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("error = %v, want %v", err, tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.folder) {
				t.Errorf("エラーにパスが含まれるべき: %v", err)
			}
		})
	}
}

package media

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type fakeExecutor struct {
	name string
	args []string
	err  error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return "", f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, _ string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func newTestDemuxer(t *testing.T, exec *fakeExecutor) (Demuxer, string) {
	t.Helper()
	tmp := t.TempDir()
	cfg := &config.Config{
		FFmpeg: config.FFmpegConfig{BinaryPath: "ffmpeg", SampleRate: 16000},
		Paths:  config.PathsConfig{Temp: tmp},
	}
	return New(cfg, exec, logger.Nop()), tmp
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{}
	d, tmp := newTestDemuxer(t, exec)

	got, err := d.ExtractAudio(context.Background(), "/videos/lecture one.mp4")
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}

	want := filepath.Join(tmp, "lecture one_audio.wav")
	if got != want {
		t.Errorf("ExtractAudio() = %q, want %q", got, want)
	}
	if exec.name != "ffmpeg" {
		t.Errorf("binary = %q, want ffmpeg", exec.name)
	}

	wantArgs := []string{
		"-i", "/videos/lecture one.mp4",
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		want,
	}
	if len(exec.args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", exec.args, wantArgs)
	}
	for i := range wantArgs {
		if exec.args[i] != wantArgs[i] {
			t.Errorf("args[%d] = %q, want %q", i, exec.args[i], wantArgs[i])
		}
	}
}

func TestExtractAudioError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("no such codec")}
	d, _ := newTestDemuxer(t, exec)

	if _, err := d.ExtractAudio(context.Background(), "clip.mkv"); err == nil {
		t.Fatal("ExtractAudio() should fail when ffmpeg fails")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"a.mp4", KindVideo},
		{"A.MOV", KindVideo},
		{"clip.webm", KindVideo},
		{"voice.mp3", KindAudio},
		{"voice.WAV", KindAudio},
		{"note.txt", KindTranscript},
		{"doc.pdf", KindUnknown},
		{"noext", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := KindOf(tt.path); got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("/in/talk.m4a") {
		t.Error("talk.m4a should be supported")
	}
	if IsSupported("/in/.talk.m4a") {
		t.Error("hidden files should not be supported")
	}
	if IsSupported("/in/talk.srt") {
		t.Error("talk.srt should not be supported")
	}
}

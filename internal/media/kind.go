package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies an input file by extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindVideo
	KindAudio
	KindTranscript
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindTranscript:
		return "transcript"
	default:
		return "unknown"
	}
}

var kindByExt = map[string]Kind{
	".mp4":  KindVideo,
	".mov":  KindVideo,
	".avi":  KindVideo,
	".mkv":  KindVideo,
	".webm": KindVideo,
	".m4v":  KindVideo,
	".flv":  KindVideo,

	".mp3":  KindAudio,
	".wav":  KindAudio,
	".m4a":  KindAudio,
	".flac": KindAudio,
	".ogg":  KindAudio,
	".opus": KindAudio,
	".aac":  KindAudio,

	".txt": KindTranscript,
}

// KindOf returns the Kind for path.
func KindOf(path string) Kind {
	return kindByExt[strings.ToLower(filepath.Ext(path))]
}

// IsSupported reports whether path is something the pipeline can process.
// Hidden files are never supported.
func IsSupported(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return KindOf(path) != KindUnknown
}

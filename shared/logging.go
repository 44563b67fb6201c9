package shared

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"strings"
)

// moduleRoots are directory names the module may be checked out under.
var moduleRoots = []string{"/filepickers-sample/", "/file-pickers/"}

// packageRoots are the first path elements of our own sources.
var packageRoots = []string{"main.go", "choices/", "picker/", "panel/", "resultlog/", "shared/", "cmd/"}

// ExtractPackagePath reduces a source path to a package-relative one
// (e.g. picker/native.go). Paths outside the module are returned unchanged.
func ExtractPackagePath(p string) string {
	norm := strings.ReplaceAll(p, "\\", "/")

	for _, root := range moduleRoots {
		if idx := strings.LastIndex(norm, root); idx >= 0 {
			return norm[idx+len(root):]
		}
	}
	for _, prefix := range packageRoots {
		if strings.HasPrefix(norm, prefix) {
			return norm
		}
	}
	return p
}

// sourceRef matches the "<file>.go:<line>:" prefix written by log.Lshortfile
// or log.Llongfile. The first match is the logger's prefix; later ones belong
// to the message.
var sourceRef = regexp.MustCompile(`(^|[ \t])([^ \t]+\.go):(\d+):`)

func shortenLogLine(line []byte) []byte {
	loc := sourceRef.FindSubmatchIndex(line)
	if loc == nil {
		return line
	}
	start, end := loc[4], loc[5]
	orig := string(line[start:end])
	short := ExtractPackagePath(orig)
	if short == orig {
		return line
	}
	out := make([]byte, 0, len(line)-len(orig)+len(short))
	out = append(out, line[:start]...)
	out = append(out, short...)
	out = append(out, line[end:]...)
	return out
}

type logPathShorteningWriter struct {
	underlying io.Writer
}

// NewLogPathShorteningWriter returns a writer that shortens the source file
// of each stdlib log line with ExtractPackagePath.
func NewLogPathShorteningWriter(underlying io.Writer) io.Writer {
	return &logPathShorteningWriter{underlying: underlying}
}

func (w *logPathShorteningWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	buf.Grow(len(p))
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		buf.Write(shortenLogLine(line))
	}
	if _, err := w.underlying.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// InitLogging routes the standard logger through the path-shortening writer.
func InitLogging(w io.Writer) {
	log.SetFlags(log.LstdFlags | log.Llongfile)
	log.SetOutput(NewLogPathShorteningWriter(w))
}

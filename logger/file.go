package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileMode selects how a log file named by Config.Path is opened.  It
// has no effect on stderr, stdout, or /dev/null.
type FileMode string

const (
	FileModeAppend   FileMode = "append"
	FileModeTruncate FileMode = "truncate"
	// FileModeRotate hands the file to lumberjack, which starts a new
	// file once the current one reaches rotateSizeMB.
	FileModeRotate FileMode = "rotate"
)

const (
	rotateSizeMB  = 5
	rotateBackups = 3
	rotateAgeDays = 28
)

var openFlags = map[FileMode]int{
	FileModeAppend:   os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	FileModeTruncate: os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
}

func (m *FileMode) Set(s string) error {
	mode := FileMode(s)
	switch mode {
	case "":
		mode = FileModeAppend
	case FileModeAppend, FileModeTruncate, FileModeRotate:
	default:
		return fmt.Errorf("invalid file mode: %s", s)
	}
	*m = mode
	return nil
}

func (m FileMode) String() string {
	return string(m)
}

func (m *FileMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// OpenFile returns the log destination for path.  The unset mode is
// FileModeAppend.
func OpenFile(path string, mode FileMode) (zapcore.WriteSyncer, error) {
	switch path {
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "/dev/null":
		return zapcore.AddSync(io.Discard), nil
	}
	if mode == FileModeRotate {
		return rotatingFile(path)
	}
	flag, ok := openFlags[mode]
	if !ok {
		flag = openFlags[FileModeAppend]
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return zapcore.Lock(f), nil
}

func rotatingFile(path string) (zapcore.WriteSyncer, error) {
	// lumberjack creates the file lazily, so check the directory now
	// rather than on the first log entry.
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotateSizeMB,
		MaxBackups: rotateBackups,
		MaxAge:     rotateAgeDays,
		Compress:   true,
	}), nil
}

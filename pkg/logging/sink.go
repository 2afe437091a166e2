package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SinkKind identifies the destination type of a Sink.
type SinkKind int

const (
	// StreamSink writes text lines to an io.Writer.
	StreamSink SinkKind = iota
	// FileSink writes JSON lines to a size-rotated file.
	FileSink
)

// Rotation controls when a FileSink rolls its file over. Sizes are in megabytes, ages in days.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// DefaultRotation is used by NewFileSink when no rotation is given.
var DefaultRotation = Rotation{
	MaxSize:    128,
	MaxBackups: 5,
	MaxAge:     16,
}

// Sink is a log destination with its own severity threshold. Construct one with NewStreamSink or
// NewFileSink; a Sink without a destination, such as the zero value, drops every record.
type Sink struct {
	kind  SinkKind
	level Level

	// StreamSink
	w        io.Writer
	colorize bool

	// FileSink
	file *lumberjack.Logger
}

// NewStreamSink returns a sink that writes formatted text lines to w. Level names are colorized
// when w is a terminal.
func NewStreamSink(w io.Writer, level Level) Sink {
	return Sink{
		kind:     StreamSink,
		level:    level,
		w:        w,
		colorize: isTerminal(w),
	}
}

// NewFileSink returns a sink that appends JSON records to the file at path, rotating it according
// to rot. A nil rot uses DefaultRotation.
func NewFileSink(path string, level Level, rot *Rotation) Sink {
	if rot == nil {
		r := DefaultRotation
		rot = &r
	}
	return Sink{
		kind:  FileSink,
		level: level,
		file: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    rot.MaxSize,
			MaxBackups: rot.MaxBackups,
			MaxAge:     rot.MaxAge,
			Compress:   rot.Compress,
		},
	}
}

// Kind reports the destination type of the sink.
func (s Sink) Kind() SinkKind { return s.kind }

type record struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Logger    string `json:"logger,omitempty"`
	Message   string `json:"message"`
}

func (s Sink) emit(r record, level Level) error {
	if level < s.level {
		return nil
	}
	switch s.kind {
	case StreamSink:
		if s.w == nil {
			return nil
		}
		tag := fmt.Sprintf("%-5s", r.Level)
		if s.colorize {
			c := levelColor(level)
			c.EnableColor()
			tag = c.Sprint(tag)
		}
		prefix := fmt.Sprintf("[%s] %s", r.Timestamp, tag)
		if r.Logger != "" {
			prefix += " [" + r.Logger + "]"
		}
		_, err := fmt.Fprintf(s.w, "%s %s\n", prefix, r.Message)
		return err
	case FileSink:
		if s.file == nil {
			return nil
		}
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = s.file.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown sink kind %d", s.kind)
	}
}

func (s Sink) close() error {
	if s.kind == FileSink && s.file != nil {
		return s.file.Close()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

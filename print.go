package table2md

import (
	"io"
	"os"
)

// Renderer writes table rows to w. The first row is the header. Renderers
// trust the caller to have validated the rows; [Table.Print] does so before
// rendering.
type Renderer interface {
	Render(w io.Writer, rows [][]string) error
}

// Flusher is implemented by sinks that buffer writes, such as
// [bufio.Writer]. [Table.Print] flushes such sinks when [WithFlush] is set.
type Flusher interface {
	Flush() error
}

// PrintOption configures [Table.Print].
type PrintOption func(*printConfig)

type printConfig struct {
	out      io.Writer
	renderer Renderer
	end      string
	flush    bool
}

// WithOutput sets the destination sink (default os.Stdout).
func WithOutput(w io.Writer) PrintOption {
	return func(c *printConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// WithRenderer sets the renderer (default [MarkdownRenderer]).
func WithRenderer(r Renderer) PrintOption {
	return func(c *printConfig) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithEnd sets a string written after the table (default empty). The
// rendered table already ends with a newline, so "\n" is not needed to
// terminate the output.
func WithEnd(end string) PrintOption {
	return func(c *printConfig) { c.end = end }
}

// WithFlush makes Print flush the sink afterward, if the sink implements
// [Flusher] (default false).
func WithFlush(flush bool) PrintOption {
	return func(c *printConfig) { c.flush = flush }
}

// Print validates the table, renders it, and writes it to the configured
// sink. Validation errors are returned before anything is written.
func (t *Table) Print(opts ...PrintOption) error {
	cfg := printConfig{out: os.Stdout, renderer: MarkdownRenderer{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if err := cfg.renderer.Render(cfg.out, t.rows); err != nil {
		return err
	}
	if cfg.end != "" {
		if _, err := io.WriteString(cfg.out, cfg.end); err != nil {
			return err
		}
	}
	if cfg.flush {
		if f, ok := cfg.out.(Flusher); ok {
			return f.Flush()
		}
	}
	return nil
}

package tsgen

import (
	"bufio"
	"fmt"
	"io"
)

// preamble declares the shape Edm.GeographyPoint fields map to. It is always
// emitted, whether or not a field uses it.
var preamble = []string{
	"type Coordinates = {",
	"type: string;",
	"coordinates: number[];",
	"}",
	"",
}

// Render returns the TypeScript declaration for def, one entry per line.
func Render(def *Definition) ([]string, error) {
	lines := make([]string, 0, len(preamble)+len(def.Fields)+2)
	lines = append(lines, preamble...)
	lines = append(lines, fmt.Sprintf("interface %s {", Identifier(def.Name)))

	for _, f := range def.Fields {
		ts, err := MapType(f.SourceType)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		lines = append(lines, fmt.Sprintf("%s: %s;", f.Name, ts))
	}

	lines = append(lines, "}")
	return lines, nil
}

// Write renders def to w and returns the number of bytes written. Output is
// buffered and flushed before returning, also on error. Nothing is written
// if a field type cannot be mapped.
func Write(w io.Writer, def *Definition) (n int64, err error) {
	lines, err := Render(def)
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flushing output: %w", ferr)
		}
		n = cw.n
	}()

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return cw.n, fmt.Errorf("writing output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return cw.n, fmt.Errorf("writing output: %w", err)
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

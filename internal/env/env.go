// Package env reads and writes the KEY=value config file the CLI keeps its
// token in.
package env

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

type Decoder struct {
	r io.Reader
}

// Decode merges every KEY=value line into v. Blank lines and # comments are
// skipped, surrounding whitespace on the key is ignored.
func (d *Decoder) Decode(v *map[string]string) error {
	scanner := bufio.NewScanner(d.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid line: %s", line)
		}
		(*v)[strings.TrimSpace(key)] = value
	}
	return scanner.Err()
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

type Encoder struct {
	w io.Writer
}

// Encode writes the entries sorted by key, so rewriting the config file never
// shuffles lines.
func (e *Encoder) Encode(v map[string]string) error {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(e.w, "%s=%s\n", key, v[key]); err != nil {
			return err
		}
	}
	return nil
}

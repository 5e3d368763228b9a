package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json tags
// decide key names; object keys become keywords and keep their field order.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	e := &ednWriter{dec: dec, pretty: pretty}
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if err := e.value(tok, 0); err != nil {
		return err
	}
	e.buf.WriteByte('\n')
	_, err = w.Write(e.buf.Bytes())
	return err
}

type ednWriter struct {
	dec    *json.Decoder
	buf    bytes.Buffer
	pretty bool
}

func (e *ednWriter) value(tok json.Token, depth int) error {
	switch t := tok.(type) {
	case nil:
		e.buf.WriteString("nil")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case string:
		e.buf.WriteString(strconv.Quote(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case json.Delim:
		switch t {
		case '{':
			return e.collection('{', '}', depth, true)
		case '[':
			return e.collection('[', ']', depth, false)
		}
		return fmt.Errorf("edn: unexpected delimiter %q", t)
	default:
		return fmt.Errorf("edn: unexpected token %T", tok)
	}
	return nil
}

func (e *ednWriter) collection(open, close byte, depth int, keyed bool) error {
	e.buf.WriteByte(open)
	n := 0
	for e.dec.More() {
		if n > 0 && !e.pretty {
			e.buf.WriteByte(' ')
		}
		if e.pretty {
			e.buf.WriteByte('\n')
			e.buf.WriteString(strings.Repeat("  ", depth+1))
		}
		if keyed {
			k, err := e.dec.Token()
			if err != nil {
				return err
			}
			ks, _ := k.(string)
			e.buf.WriteString(":" + keyword(ks) + " ")
		}
		tok, err := e.dec.Token()
		if err != nil {
			return err
		}
		if err := e.value(tok, depth+1); err != nil {
			return err
		}
		n++
	}
	// Closing delimiter.
	if _, err := e.dec.Token(); err != nil {
		return err
	}
	if e.pretty && n > 0 {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat("  ", depth))
	}
	e.buf.WriteByte(close)
	return nil
}

func keyword(s string) string {
	s = strings.TrimSpace(s)
	return strings.Join(strings.Fields(s), "-")
}

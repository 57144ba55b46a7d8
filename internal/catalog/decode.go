package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// utf8Reader returns a reader that yields the catalog as UTF-8.
// A leading BOM always wins; otherwise the encoding is sniffed from the data rows.
func utf8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	sample, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	enc := sniff(sample, len(sample) == sniffSize)

	return transform.NewReader(br, unicode.BOMOverride(enc.NewDecoder())), nil
}

// sniff picks the encoding of BOM-less input. Column names are ASCII, so only the
// city rows below the first line carry any signal.
func sniff(sample []byte, truncated bool) encoding.Encoding {
	rows := sample
	if nl := bytes.IndexByte(rows, '\n'); nl >= 0 && nl+1 < len(rows) {
		rows = rows[nl+1:]
	}

	if truncated {
		rows = trimPartialRune(rows)
	}

	if utf8.Valid(rows) {
		return encoding.Nop
	}

	result, err := chardet.NewTextDetector().DetectBest(rows)
	if err != nil {
		return charmap.Windows1252
	}

	switch result.Charset {
	case "UTF-8":
		return encoding.Nop
	case "ISO-8859-1":
		return charmap.ISO8859_1
	case "ISO-8859-2":
		return charmap.ISO8859_2
	case "windows-1250":
		return charmap.Windows1250
	}

	// Spreadsheet exports without a BOM are almost always Windows-1252.
	return charmap.Windows1252
}

// trimPartialRune drops a multi-byte rune cut off at the end of a truncated sample.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}

			break
		}
	}

	return b
}

package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jsphweid/autochart/model"
	"github.com/pkg/errors"
)

// Write encodes v indented by two spaces with every non-ASCII rune escaped
// and no trailing newline.
func Write(w io.Writer, v any) error {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
	return err
}

// escapeNonASCII rewrites runes above 0x7F as \uXXXX, using a surrogate
// pair above 0xFFFF. The encoder only emits them inside strings.
func escapeNonASCII(data []byte) []byte {
	res := make([]byte, 0, len(data))
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			res = append(res, data[0])
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			res = append(res, fmt.Sprintf("\\u%04x\\u%04x", r1, r2)...)
		} else {
			res = append(res, fmt.Sprintf("\\u%04x", r)...)
		}
	}
	return res
}

func Marshal(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Write(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteFile(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return errors.Wrap(err, "could not encode")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

func ReadFile(path string) (model.Chart, error) {
	var c model.Chart
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "could not read %v", path)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "could not decode chart %v", path)
	}
	return c, nil
}

func NewMeta(bpm float64, opts Options) model.Meta {
	return model.Meta{
		DisplayName:         "Generated Song",
		Bpm:                 model.Float(math.Round(bpm*10) / 10),
		Icon:                opts.Opponent,
		Color:               "#00FF00",
		CoopAllowed:         true,
		OpponentModeAllowed: true,
	}
}

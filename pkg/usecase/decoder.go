package usecase

import (
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// EncodingAuto picks the OEM code page on Windows and UTF-8 everywhere else
const EncodingAuto = "auto"

var legacyEncodings = map[string]*charmap.Charmap{
	"cp866":        charmap.CodePage866,
	"ibm866":       charmap.CodePage866,
	"cp437":        charmap.CodePage437,
	"cp1251":       charmap.Windows1251,
	"windows-1251": charmap.Windows1251,
	"koi8-r":       charmap.KOI8R,
}

// OutputDecoder turns raw process output into text
type OutputDecoder struct {
	name    string
	charmap encoding.Encoding
}

// NewOutputDecoder resolves an encoding name. goos is only consulted for "auto".
func NewOutputDecoder(name, goos string) (*OutputDecoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return &OutputDecoder{name: "utf-8"}, nil
	case EncodingAuto:
		if goos == "windows" {
			return &OutputDecoder{name: "cp866", charmap: charmap.CodePage866}, nil
		}
		return &OutputDecoder{name: "utf-8"}, nil
	}

	cm, ok := legacyEncodings[key]
	if !ok {
		return nil, domain.ErrConfiguration.Wrap(goerr.New("unsupported output encoding",
			goerr.V("encoding", name),
			goerr.V("supported", SupportedEncodings()),
		))
	}
	return &OutputDecoder{name: key, charmap: cm}, nil
}

// Name returns the canonical encoding name
func (d *OutputDecoder) Name() string {
	return d.name
}

// Decode converts raw bytes. Invalid UTF-8 sequences are replaced rather than rejected.
func (d *OutputDecoder) Decode(raw []byte) (string, error) {
	if d == nil || d.charmap == nil {
		return strings.ToValidUTF8(string(raw), "�"), nil
	}

	out, err := d.charmap.NewDecoder().Bytes(raw)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode command output", goerr.V("encoding", d.name))
	}
	return string(out), nil
}

// SupportedEncodings lists every accepted encoding name
func SupportedEncodings() []string {
	names := []string{"utf-8", "utf8", EncodingAuto}
	for name := range legacyEncodings {
		names = append(names, name)
	}
	sort.Strings(names[3:])
	return names
}

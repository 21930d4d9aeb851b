package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/usecase"
)

func TestOutputDecoder(t *testing.T) {
	t.Run("utf-8 passes text through", func(t *testing.T) {
		decoder, err := usecase.NewOutputDecoder("utf-8", "linux")
		gt.NoError(t, err)

		out, err := decoder.Decode([]byte("Ошибка"))
		gt.NoError(t, err)
		gt.Equal(t, out, "Ошибка")
	})

	t.Run("empty name means utf-8", func(t *testing.T) {
		decoder, err := usecase.NewOutputDecoder("", "windows")
		gt.NoError(t, err)
		gt.Equal(t, decoder.Name(), "utf-8")
	})

	t.Run("invalid utf-8 is replaced", func(t *testing.T) {
		decoder, err := usecase.NewOutputDecoder("utf8", "linux")
		gt.NoError(t, err)

		out, err := decoder.Decode([]byte{'a', 0xff, 'b'})
		gt.NoError(t, err)
		gt.Equal(t, out, "a�b")
	})

	t.Run("cp866 decodes DOS Cyrillic", func(t *testing.T) {
		decoder, err := usecase.NewOutputDecoder("CP866", "linux")
		gt.NoError(t, err)
		gt.Equal(t, decoder.Name(), "cp866")

		// "Привет" in code page 866
		out, err := decoder.Decode([]byte{0x8f, 0xe0, 0xa8, 0xa2, 0xa5, 0xe2})
		gt.NoError(t, err)
		gt.Equal(t, out, "Привет")
	})

	t.Run("auto selects cp866 on windows only", func(t *testing.T) {
		win, err := usecase.NewOutputDecoder("auto", "windows")
		gt.NoError(t, err)
		gt.Equal(t, win.Name(), "cp866")

		linux, err := usecase.NewOutputDecoder("auto", "linux")
		gt.NoError(t, err)
		gt.Equal(t, linux.Name(), "utf-8")
	})

	t.Run("unknown encoding is a configuration error", func(t *testing.T) {
		_, err := usecase.NewOutputDecoder("ebcdic", "linux")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("nil decoder behaves as utf-8", func(t *testing.T) {
		var decoder *usecase.OutputDecoder
		out, err := decoder.Decode([]byte("ok"))
		gt.NoError(t, err)
		gt.Equal(t, out, "ok")
	})
}

func TestSupportedEncodings(t *testing.T) {
	names := usecase.SupportedEncodings()
	gt.Equal(t, names[0], "utf-8")

	found := false
	for _, n := range names {
		if n == "cp866" {
			found = true
		}
	}
	gt.True(t, found)
}

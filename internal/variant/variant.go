// Package variant converts text between simplified and traditional
// Chinese scripts.
package variant

import (
	"fmt"
	"sync"

	"github.com/liuzl/gocc"
)

// Converters are built on first use so that binaries which never touch
// traditional Chinese do not need the OpenCC data files installed.
var (
	s2tOnce sync.Once
	s2tConv *gocc.OpenCC
	s2tErr  error

	t2sOnce sync.Once
	t2sConv *gocc.OpenCC
	t2sErr  error
)

func simplifiedToTraditional() (*gocc.OpenCC, error) {
	s2tOnce.Do(func() {
		s2tConv, s2tErr = gocc.New("s2t")
		if s2tErr != nil {
			s2tErr = fmt.Errorf("failed to initialize s2t converter: %w", s2tErr)
		}
	})
	return s2tConv, s2tErr
}

func traditionalToSimplified() (*gocc.OpenCC, error) {
	t2sOnce.Do(func() {
		t2sConv, t2sErr = gocc.New("t2s")
		if t2sErr != nil {
			t2sErr = fmt.Errorf("failed to initialize t2s converter: %w", t2sErr)
		}
	})
	return t2sConv, t2sErr
}

// ToTraditional converts simplified Chinese to traditional Chinese
func ToTraditional(text string) (string, error) {
	conv, err := simplifiedToTraditional()
	if err != nil {
		return "", err
	}
	return conv.Convert(text)
}

// ToSimplified converts traditional Chinese to simplified Chinese
func ToSimplified(text string) (string, error) {
	conv, err := traditionalToSimplified()
	if err != nil {
		return "", err
	}
	return conv.Convert(text)
}

// To converts text into the given script variant. Simplified is the
// no-conversion target for invalid variants.
func To(lang Lang, text string) (string, error) {
	if lang.Default() == LangHant {
		return ToTraditional(text)
	}
	return ToSimplified(text)
}

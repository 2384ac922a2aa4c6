//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeymap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyQ, KeyEscape},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyR, KeyReset},
}

func (k *hostKeyboard) poll() {
	for _, m := range hostKeymap {
		if !inpututil.IsKeyJustPressed(m.key) {
			continue
		}
		select {
		case k.ch <- KeyEvent{Code: m.code, Press: true}:
		default:
		}
	}
}

// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package x11view presents images in an X11 window.
package x11view

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xgraphics"
)

// EventKind distinguishes the events reported by a Window.
type EventKind int

// These are the event kinds.
const (
	Expose EventKind = iota // the window needs repainting
	Key                     // a key was pressed
	Closed                  // the connection to the X server was lost
)

// Event is something which happened to the window.
type Event struct {
	Kind EventKind
	Key  string // for Key events, the text of the key
}

// Window is a top-level X11 window showing one image at a time.
// Show, Repaint and Close must be called from the same goroutine.
type Window struct {
	xu     *xgbutil.XUtil
	win    xproto.Window
	img    *xgraphics.Image
	events chan Event
	done   chan struct{}
}

// Open connects to the X server named by $DISPLAY and maps a new window of
// the given size.
func Open(title string, width, height int) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11view: %w", err)
	}
	keybind.Initialize(xu)

	conn := xu.Conn()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11view: %w", err)
	}
	xproto.CreateWindow(
		conn,
		xproto.WindowClassCopyFromParent,
		win,
		screen.Root,
		0, 0,
		uint16(width), uint16(height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.BlackPixel,
			xproto.EventMaskExposure | xproto.EventMaskKeyPress,
		},
	)
	if err := icccm.WmNameSet(xu, win, title); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11view: %w", err)
	}
	xproto.MapWindow(conn, win)

	w := &Window{
		xu:     xu,
		win:    win,
		events: make(chan Event, 8),
		done:   make(chan struct{}),
	}
	go w.readEvents()
	return w, nil
}

// Events returns the channel on which window events are delivered.  The
// channel is closed after a Closed event, or after Close.
func (w *Window) Events() <-chan Event {
	return w.events
}

func (w *Window) readEvents() {
	defer close(w.events)
	for {
		ev, err := w.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			w.send(Event{Kind: Closed})
			return
		}
		ok := true
		switch e := ev.(type) {
		case xproto.ExposeEvent:
			if e.Count == 0 {
				ok = w.send(Event{Kind: Expose})
			}
		case xproto.KeyPressEvent:
			s := keybind.LookupString(w.xu, e.State, e.Detail)
			ok = w.send(Event{Kind: Key, Key: s})
		}
		if !ok {
			return
		}
	}
}

// send delivers ev, unless the window is closed first.  The return value
// is false if the window has been closed.
func (w *Window) send(ev Event) bool {
	select {
	case w.events <- ev:
		return true
	case <-w.done:
		return false
	}
}

// Show replaces the window content by img.
func (w *Window) Show(img image.Image) error {
	ximg := xgraphics.NewConvert(w.xu, img)
	if err := ximg.XSurfaceSet(w.win); err != nil {
		ximg.Destroy()
		return fmt.Errorf("x11view: %w", err)
	}
	ximg.XDraw()
	ximg.XPaint(w.win)

	if w.img != nil {
		w.img.Destroy()
	}
	w.img = ximg
	return nil
}

// Repaint draws the current image again, after an Expose event.
func (w *Window) Repaint() {
	if w.img != nil {
		w.img.XPaint(w.win)
	}
}

// Close destroys the window and closes the connection to the X server.
func (w *Window) Close() {
	if w.img != nil {
		w.img.Destroy()
		w.img = nil
	}
	close(w.done)
	xproto.DestroyWindow(w.xu.Conn(), w.win)
	w.xu.Conn().Close()
}

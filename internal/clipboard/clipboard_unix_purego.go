//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Without cgo the clipboard is owned through a hidden X11 window that
// answers selection requests itself.
var backend *x11Owner

func initBackend() error {
	owner := &x11Owner{}
	if err := owner.connect(); err != nil {
		return err
	}
	backend = owner
	return nil
}

// WriteImage publishes img as PNG. The returned channel is closed once
// another application takes over the clipboard; the data is only served
// while this process runs.
func WriteImage(img image.Image) (<-chan struct{}, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}
	return backend.own(offer{png: data})
}

// WriteText publishes UTF-8 text, with the same lifetime as WriteImage.
func WriteText(text string) (<-chan struct{}, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return backend.own(offer{text: []byte(text)})
}

// offer is what the clipboard currently serves.
type offer struct {
	text []byte
	png  []byte
}

type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet

	mu      sync.Mutex
	current offer
	lost    chan struct{}
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	png       xproto.Atom
}

func (o *x11Owner) connect() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	o.conn, o.window, o.atoms = conn, window, atoms
	go o.serve()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "image/png"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atomSet{}, err
		}
		got[i] = reply.Atom
	}
	return atomSet{clipboard: got[0], targets: got[1], utf8: got[2], textPlain: got[3], png: got[4]}, nil
}

func (o *x11Owner) own(data offer) (<-chan struct{}, error) {
	o.mu.Lock()
	if o.lost != nil {
		close(o.lost)
	}
	o.current = data
	lost := make(chan struct{})
	o.lost = lost
	o.mu.Unlock()

	if err := xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	return lost, nil
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.current = offer{}
			if o.lost != nil {
				close(o.lost)
				o.lost = nil
			}
			o.mu.Unlock()
		}
	}
}

func (o *x11Owner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	o.mu.Lock()
	data := o.current
	o.mu.Unlock()

	var (
		targetType xproto.Atom
		format     byte = 8
		payload    []byte
		length     uint32
	)
	switch e.Target {
	case o.atoms.targets:
		targets := []xproto.Atom{o.atoms.targets}
		if len(data.text) > 0 {
			targets = append(targets, o.atoms.utf8, xproto.AtomString, o.atoms.textPlain)
		}
		if len(data.png) > 0 {
			targets = append(targets, o.atoms.png)
		}
		payload = make([]byte, len(targets)*4)
		for i, atom := range targets {
			xgb.Put32(payload[i*4:], uint32(atom))
		}
		targetType, format, length = xproto.AtomAtom, 32, uint32(len(targets))
	case o.atoms.utf8, xproto.AtomString, o.atoms.textPlain:
		payload, targetType = data.text, o.atoms.utf8
	case o.atoms.png:
		payload, targetType = data.png, o.atoms.png
	}
	if format == 8 {
		length = uint32(len(payload))
	}
	if len(payload) == 0 {
		property = xproto.AtomNone
	} else {
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, targetType, format, length, payload)
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

package tui

import (
	"github.com/mgalindo/wpeek/internal/blocks"
	"github.com/mgalindo/wpeek/internal/wp"
)

// DetailPhase is the lifecycle phase of the detail overlay.
type DetailPhase int

const (
	DetailClosed DetailPhase = iota
	DetailOpening
	DetailLoaded
	DetailFailed
)

// detailState tracks the detail overlay. Each Open bumps the token; responses
// carrying an older token belong to a closed session and are dropped.
type detailState struct {
	phase DetailPhase
	token int
	item  wp.ContentItem
	err   error

	contentMode string
	blockCursor int
}

// Open starts a detail session for the given summary item and returns the
// session token. The summary is shown immediately while the full record
// loads. needsFetch reports whether a fetch should be issued.
func (d *detailState) Open(item wp.ContentItem, contentMode string, needsFetch bool) int {
	d.token++
	d.item = item
	d.err = nil
	d.contentMode = contentMode
	d.blockCursor = 0
	if needsFetch {
		d.phase = DetailOpening
	} else {
		d.phase = DetailLoaded
	}
	return d.token
}

// Close ends the session. Any in-flight response keeps the old token and is
// discarded on arrival.
func (d *detailState) Close() {
	d.phase = DetailClosed
	d.err = nil
}

// Resolve applies a fetch response. Responses for other tokens or for a
// closed overlay are ignored. A failed fetch keeps showing the summary data.
func (d *detailState) Resolve(token int, item *wp.ContentItem, err error) {
	if token != d.token || d.phase == DetailClosed {
		return
	}
	if err != nil {
		d.phase = DetailFailed
		d.err = err
		return
	}
	if item != nil {
		d.item = *item
	}
	d.phase = DetailLoaded
	d.err = nil
}

// blockCount is how many content blocks the current item splits into.
func (d *detailState) blockCount() int {
	return len(blocks.Split(d.item.Content))
}

func (d *detailState) Visible() bool {
	return d.phase != DetailClosed
}

func (d *detailState) Loading() bool {
	return d.phase == DetailOpening
}

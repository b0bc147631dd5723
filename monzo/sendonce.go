package monzo

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadySent is returned by Send when the request, or a copy derived
// from it, has already been sent.
var ErrAlreadySent = errors.New("monzo: request already sent")

// errNoClient is returned by Send on a zero-value request.
var errNoClient = errors.New("monzo: request was not created by a Client")

// sendOnce is shared by a request value and all its copies.
type sendOnce struct {
	sent *atomic.Bool
}

func newSendOnce() sendOnce {
	return sendOnce{sent: new(atomic.Bool)}
}

// claim marks the request as sent. Only the first call succeeds.
func (o sendOnce) claim() error {
	if o.sent == nil {
		return errNoClient
	}
	if !o.sent.CompareAndSwap(false, true) {
		return ErrAlreadySent
	}
	return nil
}

package memqueue

import "errors"

// errInvalidReceipt is returned when a delivery carries a receipt that did
// not come from this queue.
var errInvalidReceipt = errors.New("delivery receipt does not belong to this queue")

// Package registry implements the artist registry: a durable mapping of
// artist ids to display names and payout accounts, plus the counter used
// to assign fresh ids.
package registry

import "github.com/canvasorg/libcanvas-go/asset"

// Artist is a registry record. Account is the payout account and the
// only principal allowed to create or alter this record.
type Artist struct {
	Name    []byte
	Account asset.AccountID
}

// Clone returns a deep copy of the record.
func (a *Artist) Clone() *Artist {
	c := &Artist{Account: a.Account}
	if a.Name != nil {
		c.Name = make([]byte, len(a.Name))
		copy(c.Name, a.Name)
	}
	return c
}

package build

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docset"
)

// Fingerprint returns an order-independent digest of the row set.
// Two indexes with the same rows have the same fingerprint regardless of
// insertion order or row ids.
func Fingerprint(rows []docset.Row) string {
	var sum uint64
	for _, row := range rows {
		sum += rowHash(row)
	}
	return fmt.Sprintf("%x", sum)
}

// rowHash hashes a row with separators that cannot appear in its fields.
func rowHash(row docset.Row) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(row.Name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(row.Type)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(row.Path)
	return d.Sum64()
}

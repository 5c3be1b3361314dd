// Package constraints provides generic type constraints.
package constraints

// Byteseq is a string or a byte slice holding URI text.
type Byteseq interface {
	~string | ~[]byte
}

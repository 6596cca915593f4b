// Package displaylist is the display-list vocabulary exchanged between a
// layout engine and a renderer.
//
// Every type is declared through package codec next to its Go definition,
// in the package registry returned by Registry. Variable-length data such as
// glyph runs, gradient stops and complex clip regions is not carried inline;
// an ItemRange points into auxiliary lists that travel separately.
//
// A list of display items is framed by EncodeList as a u64 count followed by
// the items back to back.
package displaylist

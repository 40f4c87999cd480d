// Package text pads strings to a display width and reports unexpected names.
//
// Width is measured in terminal cells with go-runewidth after NFC
// normalisation, so combining sequences and wide runes align correctly.
package text

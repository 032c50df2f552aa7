// Package grid scans a multi-line document into 3×3 letter neighbourhoods.
//
// For a line L the rows above, at and below L are read independently through
// alpha-filtered cursors, so the columns of a neighbourhood are "the k-th
// letter of each line", not screen columns.
package grid

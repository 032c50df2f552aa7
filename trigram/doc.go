// Package trigram accumulates three-letter frequency statistics from corpus
// text.
//
// A Model starts empty, grows additively with every ingested source and is
// reset by Clear. Derived totals are recomputed from the table after every
// mutation, never adjusted incrementally.
package trigram

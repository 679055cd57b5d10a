// Package internal holds iterator helpers shared by the risc16 packages.
package internal

import (
	"fmt"
	"iter"
)

// Concat2 yields the pairs of every sequence, one sequence after another.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Named yields the elements of list, keyed by prefix and index.
func Named[V any](prefix string, list []V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for n, val := range list {
			if !yield(fmt.Sprintf("%s%d", prefix, n), val) {
				return
			}
		}
	}
}

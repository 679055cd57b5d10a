// Package exercises embeds the built-in exercise collection.
package exercises

import (
	"embed"

	"github.com/ezrec/risc16/exercise"
)

//go:embed *.txt
var FS embed.FS

// Store returns the built-in collection as an exercise store.
func Store() exercise.Store {
	return &exercise.FSStore{FS: FS}
}

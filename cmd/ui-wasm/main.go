//go:build js && wasm

package main

import (
	"github.com/Its-donkey/sweet-treats/internal/ui/wasm"
	"github.com/Its-donkey/sweet-treats/logging"
)

func main() {
	wasm.RunApp(logging.INFO)
}

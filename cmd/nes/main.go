// Command nes is the host binary: it loads an iNES ROM named on the
// command line, wires the core to a window and an audio stream, and
// drives it until the window is closed. This is the "Top-level Controller" collaborator --
// everything it calls is a published nes/internal API, no emulation
// logic lives here.
package main

import (
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/corvid-systems/nescore/internal/audio"
	"github.com/corvid-systems/nescore/internal/display"
	"github.com/corvid-systems/nescore/nes"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

func main() {
	if len(os.Args) < 2 {
		glog.Fatalf("usage: %s <rom.nes>", os.Args[0])
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		glog.Fatalf("nes: reading rom: %v", err)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Fatalf("nes: loading rom: %v", err)
	}

	console := nes.NewConsole(cartridge)
	console.Reset()

	win := display.MustNew(screenWidth, screenHeight, "nescore")
	defer win.Close()
	console.SetFrameCallback(win.FrameHandler())

	sound := audio.New()
	if err := sound.Start(); err != nil {
		glog.Fatalf("nes: starting audio: %v", err)
	}
	defer sound.Close()
	console.SetAudioOut(sound.Channel)

	for !win.ShouldClose() {
		time.Sleep(time.Millisecond)
		console.Step()
	}
}

// Command spectrum48 runs the ZX Spectrum 48K emulator core against a
// ROM image and a host window.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/intuitionamiga/spectrum48/internal/debug"
	"github.com/intuitionamiga/spectrum48/internal/emulator"
	"github.com/intuitionamiga/spectrum48/internal/host"
	"github.com/intuitionamiga/spectrum48/internal/rom"
	"github.com/intuitionamiga/spectrum48/internal/video"
)

// framePeriod is the host's per-frame sleep: 20 ms, per the runtime
// pacing contract.
const framePeriod = 20 * time.Millisecond

func main() {
	var debugMode bool

	rootCmd := &cobra.Command{
		Use:   "spectrum48 <rom_path>",
		Short: "ZX Spectrum 48K emulator core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], debugMode)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "print a disassembly listing alongside the F1 system-info dump")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(romPath string, debugMode bool) error {
	image, err := rom.Load(romPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	emu := emulator.New(image)
	h := host.New()
	if err := h.Open(video.FrameWidth, video.FrameHeight, "ZX Spectrum 48K"); err != nil {
		return fmt.Errorf("opening host window: %w", err)
	}
	defer h.Close()

	for h.IsOpen() {
		if err := h.Pump(); err != nil {
			log.Printf("input pump: %v", err)
		}

		if h.F1Pressed() {
			info := emu.Snapshot()
			fmt.Print(debug.FormatInfo(info))
			if debugMode {
				for _, line := range debug.Disassemble(emu.Memory, info.PC, 10) {
					fmt.Printf("%04X  %-12s %s\n", line.Address, line.HexBytes, line.Mnemonic)
				}
			}
		}
		if h.F5Pressed() {
			emu.Reset()
		}
		if color, ok := h.BorderKey(); ok {
			emu.SetBorder(color)
		}

		frame := emu.RunFrame()
		if err := h.Blit(frame); err != nil {
			log.Printf("blit: %v", err)
		}

		time.Sleep(framePeriod)
	}

	return nil
}

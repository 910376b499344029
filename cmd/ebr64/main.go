// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/ebr64/cpu"
	"github.com/ezrec/ebr64/emulator"
)

func main() {
	var compile string
	var output string
	var run string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".ebr file to compile")
	flag.StringVar(&output, "o", "a.ebrc", "Output file for -c")
	flag.StringVar(&run, "r", "", ".ebrc file to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		image, err := prog.Binary()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		err = os.WriteFile(output, image, 0644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	// Run a compiled artifact, always from disk.
	if len(run) != 0 {
		image, err := os.ReadFile(run)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}

		emu := emulator.NewEmulator()
		emu.Verbose = verbose

		err = emu.LoadImage(image)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}

		err = emu.Reset()
		if err != nil {
			log.Fatal(err)
		}

		err = emu.Run()
		if err != nil {
			log.Fatal(err)
		}
	}
}

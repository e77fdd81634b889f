// lc3-vm is a virtual machine for the LC-3 architecture.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"golang.org/x/sys/unix"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"run one or more LC-3 image files"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	StartAddr string   `name:"startaddr" help:"override the initial program counter (e.g. 0x3000)"`
	Trace     bool     `help:"dump machine state to stderr before each instruction"`
	Images    []string `arg:"" name:"image" type:"existingfile" help:"LC-3 object image files"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	cons := NewTTY(os.Stdin, os.Stdout)
	cpu := New(cons)
	cpu.trace = r.Trace

	start := uint16(pcStart)
	for i, path := range r.Images {
		origin, err := loadImage(&cpu.mem, path)
		if err != nil {
			return err
		}
		// A first image placed away from the conventional entry point
		// relocates the start of execution.
		if i == 0 && origin != pcStart {
			start = origin
		}
	}
	if r.StartAddr != "" {
		addr, err := strconv.ParseUint(r.StartAddr, 0, 16)
		if err != nil {
			return fmt.Errorf("bad start address %q: %w", r.StartAddr, err)
		}
		start = uint16(addr)
	}
	cpu.PC = start

	raw, err := enableRawMode(os.Stdin)
	if err != nil {
		return err
	}
	defer raw.Restore()

	// A signal delivered while blocked on a console read would otherwise
	// kill the process with the terminal still in raw mode.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, unix.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		raw.Restore()
		os.Exit(130)
	}()

	if err := cpu.Run(); err != nil {
		raw.Restore()
		return err
	}
	return nil
}

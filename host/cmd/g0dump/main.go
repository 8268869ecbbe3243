// g0dump decodes an Intel HEX dump of the peripheral address space into a
// configuration report. Dumps come from a debugger script or from g0probe
// sessions captured to file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"

	"github.com/hbacelar8/stm32g0-ll-drivers/snapshot"
)

// hexMemory serves words out of the parsed dump segments, little endian.
type hexMemory struct {
	mem *gohex.Memory
}

func (h hexMemory) ReadWord(addr uint32) (uint32, bool) {
	for _, seg := range h.mem.GetDataSegments() {
		if addr < seg.Address || addr+4 > seg.Address+uint32(len(seg.Data)) {
			continue
		}
		off := addr - seg.Address
		d := seg.Data[off : off+4]
		return uint32(d[0]) | uint32(d[1])<<8 | uint32(d[2])<<16 | uint32(d[3])<<24, true
	}
	return 0, false
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <dump.hex>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	rep := snapshot.Decode(hexMemory{mem: mem})
	if rep.RCC == nil && rep.ADC == nil && len(rep.Ports) == 0 {
		fmt.Fprintln(os.Stderr, "dump covers no known peripheral block")
		os.Exit(1)
	}
	fmt.Print(rep)
}

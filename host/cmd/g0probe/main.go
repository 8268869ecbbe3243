// g0probe is an interactive register console for a target running the
// debug-probe firmware. It reads and writes single words and can decode
// whole peripheral blocks into configuration reports.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/hbacelar8/stm32g0-ll-drivers/gpio"
	"github.com/hbacelar8/stm32g0-ll-drivers/host/probe"
	"github.com/hbacelar8/stm32g0-ll-drivers/host/serial"
	"github.com/hbacelar8/stm32g0-ll-drivers/snapshot"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "serial device path")
	baud    = flag.Int("baud", 115200, "baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "log every word transfer")
)

// liveMemory serves snapshot decodes straight off the wire. Transfer
// failures read as unmapped words, so a half-responsive target still
// yields a partial report.
type liveMemory struct {
	c *probe.Client
}

func (m liveMemory) ReadWord(addr uint32) (uint32, bool) {
	v, err := m.c.ReadWord(addr)
	if err != nil {
		if *verbose {
			fmt.Fprintf(os.Stderr, "read %#08x: %v\n", addr, err)
		}
		return 0, false
	}
	if *verbose {
		fmt.Printf("read %#08x -> %#08x\n", addr, v)
	}
	return v, true
}

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer port.Close()

	client := probe.NewClient(port)
	fmt.Printf("connected to %s\n", *device)
	fmt.Println("commands: read <addr> | write <addr> <value> | decode <block> | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if err := run(client, args); err == errQuit {
			return
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

func run(c *probe.Client, args []string) error {
	switch args[0] {
	case "quit", "exit", "q":
		return errQuit

	case "help", "?":
		fmt.Println("read <addr>            read one 32-bit word")
		fmt.Println("write <addr> <value>   write one 32-bit word")
		fmt.Println("decode <block>         rcc, gpioa..gpiof or adc")
		return nil

	case "read":
		if len(args) != 2 {
			return fmt.Errorf("usage: read <addr>")
		}
		addr, err := parseWord(args[1])
		if err != nil {
			return err
		}
		v, err := c.ReadWord(addr)
		if err != nil {
			return err
		}
		fmt.Printf("%#08x: %#08x\n", addr, v)
		return nil

	case "write":
		if len(args) != 3 {
			return fmt.Errorf("usage: write <addr> <value>")
		}
		addr, err := parseWord(args[1])
		if err != nil {
			return err
		}
		value, err := parseWord(args[2])
		if err != nil {
			return err
		}
		return c.WriteWord(addr, value)

	case "decode":
		if len(args) != 2 {
			return fmt.Errorf("usage: decode rcc|gpioa..gpiof|adc")
		}
		return decode(liveMemory{c: c}, strings.ToLower(args[1]))
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func decode(m snapshot.Memory, block string) error {
	switch block {
	case "rcc":
		rep := snapshot.DecodeRCC(m)
		if rep == nil {
			return fmt.Errorf("clock block unreadable")
		}
		fmt.Print(rep)
		return nil
	case "adc":
		rep := snapshot.DecodeADC(m)
		if rep == nil {
			return fmt.Errorf("converter block unreadable")
		}
		fmt.Print(rep)
		return nil
	case "gpioa", "gpiob", "gpioc", "gpiod", "gpioe", "gpiof":
		p := gpio.Port(block[4] - 'a')
		rep := snapshot.DecodePort(m, p)
		if rep == nil {
			return fmt.Errorf("port %s unreadable", p)
		}
		fmt.Print(rep)
		return nil
	}
	return fmt.Errorf("unknown block %q", block)
}

func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad word %q: %w", s, err)
	}
	return uint32(v), nil
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// vmDumper writes a human readable dump of registers and every non-zero
// row of allocated memory.
type vmDumper struct {
	vm  *VM
	out io.Writer

	rowSize   int
	addrWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  ip: %v\n", dump.vm.ip)
	fmt.Fprintf(dump.out, "  rb: %v\n", dump.vm.rb)
	fmt.Fprintf(dump.out, "  steps: %v\n", dump.vm.steps)
	if dump.vm.halted {
		fmt.Fprintf(dump.out, "  halted\n")
	}
	dump.dumpMem()
}

func (dump vmDumper) dumpMem() {
	if dump.rowSize == 0 {
		dump.rowSize = 8
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.FormatInt(dump.vm.Size(), 10))
	}

	d := dump.vm.Dump()
	fmt.Fprintf(dump.out, "# Memory pages:%v size:%v\n", len(d.Pages), dump.vm.Size())

	var sb strings.Builder
	for pageID, page := range d.Pages {
		base := d.Bases[pageID]
		for i := 0; i < len(page); i += dump.rowSize {
			row := page[i:]
			if len(row) > dump.rowSize {
				row = row[:dump.rowSize]
			}
			if allZero(row) {
				continue
			}
			sb.Reset()
			fmt.Fprintf(&sb, "  @%-*v", dump.addrWidth, base+int64(i))
			for _, val := range row {
				sb.WriteByte(' ')
				sb.WriteString(strconv.FormatInt(val, 10))
			}
			sb.WriteByte('\n')
			io.WriteString(dump.out, sb.String())
		}
	}
}

func allZero(vals []int64) bool {
	for _, val := range vals {
		if val != 0 {
			return false
		}
	}
	return true
}

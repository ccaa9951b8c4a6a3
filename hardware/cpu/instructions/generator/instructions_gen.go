// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 6502.\n" +
	"// The table is indexed by opcode. Undefined opcodes have a nil entry.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{\n"

const trailingBoilerPlate = "}\n}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

func parseCSV(r io.Reader) (map[uint8]instructions.Definition, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// effect field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(rec[0]), "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		var ok bool
		defn.Operator, ok = instructions.ParseOperator(rec[1])
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = 1 + defn.AddressingMode.OperandBytes()

		// field: page sensitive
		defn.PageSensitive, err = strconv.ParseBool(rec[4])
		if err != nil {
			return nil, fmt.Errorf("invalid page sensitivity for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect = instructions.Read
		if len(rec) == 6 {
			defn.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown effect for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	return deftable, nil
}

// operatorIdentifier converts the operator mnemonic to the Go identifier used
// in the instructions package.
func operatorIdentifier(op instructions.Operator) string {
	s := op.String()
	return s[:1] + strings.ToLower(s[1:])
}

func generate(deftable map[uint8]instructions.Definition) ([]byte, error) {
	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)

	for opcode := 0; opcode < 256; opcode++ {
		defn, ok := deftable[uint8(opcode)]
		if !ok {
			s.WriteString("nil,\n")
			continue
		}
		s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},\n",
			defn.OpCode, operatorIdentifier(defn.Operator), defn.Bytes, defn.Cycles,
			defn.AddressingMode, defn.PageSensitive, defn.Effect))
	}

	s.WriteString(trailingBoilerPlate)

	return format.Source([]byte(s.String()))
}

func main() {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer df.Close()

	deftable, err := parseCSV(df)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output, err := generate(deftable)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d instructions defined, %d opcodes undefined\n", len(deftable), 256-len(deftable))
}

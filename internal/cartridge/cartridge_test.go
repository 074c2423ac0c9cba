package cartridge

import (
	"errors"
	"testing"
)

func buildINES(prgPages, chrPages, flags6, flags7 uint8) []byte {
	header := make([]byte, headerSize)
	copy(header[0:4], "NES\x1A")
	header[4] = prgPages
	header[5] = chrPages
	header[6] = flags6
	header[7] = flags7

	prg := make([]byte, int(prgPages)*prgPageSize)
	for i := range prg {
		prg[i] = uint8(i % 256)
	}
	chr := make([]byte, int(chrPages)*chrPageSize)
	for i := range chr {
		chr[i] = uint8((i + 1) % 256)
	}

	rom := append(header, prg...)
	rom = append(rom, chr...)
	return rom
}

func TestParseValidNROM(t *testing.T) {
	rom := buildINES(1, 1, 0x00, 0x00)

	cart, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cart.prgROM) != prgPageSize {
		t.Errorf("prgROM len = %d, want %d", len(cart.prgROM), prgPageSize)
	}
	if len(cart.chrROM) != chrPageSize {
		t.Errorf("chrROM len = %d, want %d", len(cart.chrROM), chrPageSize)
	}
	if cart.MapperID != 0 {
		t.Errorf("MapperID = %d, want 0", cart.MapperID)
	}
	if cart.Mirror != MirrorHorizontal {
		t.Errorf("Mirror = %v, want horizontal", cart.Mirror)
	}
}

func TestParseMirroringModes(t *testing.T) {
	tests := []struct {
		name   string
		flags6 uint8
		want   Mirror
	}{
		{"horizontal", 0x00, MirrorHorizontal},
		{"vertical", 0x01, MirrorVertical},
		{"four-screen overrides vertical bit", 0x09, MirrorFourScreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := Parse(buildINES(1, 1, tt.flags6, 0))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cart.Mirror != tt.want {
				t.Errorf("Mirror = %v, want %v", cart.Mirror, tt.want)
			}
		})
	}
}

func TestParseBadTag(t *testing.T) {
	rom := buildINES(1, 1, 0, 0)
	rom[0] = 'X'
	_, err := Parse(rom)
	if !errors.Is(err, ErrBadTag) {
		t.Fatalf("err = %v, want ErrBadTag", err)
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	rom := buildINES(1, 1, 0, 0x40) // nonzero container-format version in flags7 bits 6-7
	_, err := Parse(rom)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestParseTruncatedPayload(t *testing.T) {
	rom := buildINES(2, 1, 0, 0)
	rom = rom[:len(rom)-100]
	_, err := Parse(rom)
	if !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("err = %v, want ErrTruncatedPayload", err)
	}
}

func TestParseTrainerSkipped(t *testing.T) {
	header := make([]byte, headerSize)
	copy(header[0:4], "NES\x1A")
	header[4] = 1
	header[5] = 0
	header[6] = 0x04 // trainer present

	trainer := make([]byte, trainerSize)
	prg := make([]byte, prgPageSize)
	for i := range prg {
		prg[i] = 0x42
	}

	rom := append(header, trainer...)
	rom = append(rom, prg...)

	cart, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cart.prgROM[0] != 0x42 {
		t.Errorf("prgROM[0] = %#x, want 0x42 (trainer should have been skipped)", cart.prgROM[0])
	}
}

func TestMapperUnsupported(t *testing.T) {
	cart, err := Parse(buildINES(1, 1, 0x10, 0)) // mapper 1 in upper nibble of flags6
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cart.MapperID != 1 {
		t.Fatalf("MapperID = %d, want 1", cart.MapperID)
	}
	if _, err := cart.Mapper(); !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("Mapper() err = %v, want ErrUnsupportedMapper", err)
	}
}

func TestNROMMirrorsHalfBankROM(t *testing.T) {
	rom := buildINES(1, 1, 0, 0)
	cart, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	low := cart.ReadPRG(0x8000)
	high := cart.ReadPRG(0xC000)
	if low != high {
		t.Errorf("16KiB PRG-ROM should mirror: ReadPRG(0x8000)=%#x ReadPRG(0xC000)=%#x", low, high)
	}
}

func TestPRGRAMReadWrite(t *testing.T) {
	cart, err := Parse(buildINES(1, 1, 0, 0))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cart.WritePRG(0x6000, 0x99)
	if got := cart.ReadPRG(0x6000); got != 0x99 {
		t.Errorf("ReadPRG(0x6000) = %#x, want 0x99", got)
	}
}

func TestParseContainerScenario(t *testing.T) {
	// End-to-end scenario from spec.md §8 #5.
	rom := buildINES(1, 1, 0, 0)
	if len(rom) != 24592 {
		t.Fatalf("constructed ROM is %d bytes, want 24592", len(rom))
	}
	cart, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cart.prgROM) != 16384 || len(cart.chrROM) != 8192 {
		t.Fatalf("prgROM=%d chrROM=%d, want 16384/8192", len(cart.prgROM), len(cart.chrROM))
	}
	if cart.MapperID != 0 || cart.Mirror != MirrorHorizontal {
		t.Fatalf("MapperID=%d Mirror=%v, want 0/horizontal", cart.MapperID, cart.Mirror)
	}
}

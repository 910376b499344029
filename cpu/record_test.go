package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPackLayout(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		rec  Record
		buf  [RECORD_SIZE]byte
	}){
		{"nop", Record{OP_NOP, 0},
			[RECORD_SIZE]byte{0x00, 0, 0, 0, 0, 0, 0, 0}},
		{"ldi_5", Record{OP_LDI, 5},
			[RECORD_SIZE]byte{0x0a, 0, 0, 0, 0, 0, 0, 0x05}},
		{"lda_neg1", Record{OP_LDA, -1},
			[RECORD_SIZE]byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"jmp_mid", Record{OP_JMP, 0x123456},
			[RECORD_SIZE]byte{0x06, 0, 0, 0, 0, 0x12, 0x34, 0x56}},
		{"sta_max", Record{OP_STA, OPERAND_MAX},
			[RECORD_SIZE]byte{0x02, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"add_min", Record{OP_ADD, OPERAND_MIN},
			[RECORD_SIZE]byte{0x03, 0x80, 0, 0, 0, 0, 0, 0}},
		{"adr_top", Record{OP_ADR, 255},
			[RECORD_SIZE]byte{0x0d, 0, 0, 0, 0, 0, 0, 0xff}},
	}

	for _, entry := range table {
		buf, err := entry.rec.Pack()
		assert.NoError(err, entry.name)
		assert.Equal(entry.buf, buf, entry.name)

		rec, err := UnpackRecord(buf[:])
		assert.NoError(err, entry.name)
		assert.Equal(entry.rec, rec, entry.name)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	values := []int64{
		0, 1, -1, 5, 255, 256, -256,
		1234567890123, -1234567890123,
		OPERAND_MAX, OPERAND_MIN,
	}

	for tag := range len(mnemonicOf) {
		inst := Instruction(tag)
		for _, value := range values {
			rec := Record{Instruction: inst, Value: value}

			buf, err := rec.Pack()
			assert.NoError(err, rec.String())

			got, err := UnpackRecord(buf[:])
			assert.NoError(err, rec.String())
			assert.Equal(rec, got, rec.String())
		}
	}
}

func TestRecordOperandRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		value int64
		ok    bool
	}){
		{"max", OPERAND_MAX, true},
		{"max_plus", OPERAND_MAX + 1, false},
		{"min", OPERAND_MIN, true},
		{"min_minus", OPERAND_MIN - 1, false},
	}

	for _, entry := range table {
		_, err := Record{Instruction: OP_LDI, Value: entry.value}.Pack()
		if entry.ok {
			assert.NoError(err, entry.name)
		} else {
			assert.Equal(ErrOperandRange(entry.value), err, entry.name)
		}
	}
}

func TestUnpackRecordErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := UnpackRecord([]byte{0x00, 0, 0})
	assert.Equal(ErrRecordSize(3), err)

	_, err = UnpackRecord([]byte{14, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(ErrUnknownTag(14), err)

	_, err = UnpackRecord([]byte{0xff, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(ErrUnknownTag(0xff), err)
}

func TestLoadImageEmpty(t *testing.T) {
	assert := assert.New(t)

	rom, err := LoadImage(nil)
	assert.NoError(err)

	count := 0
	for _, rec := range rom.Records() {
		assert.Equal(Record{Instruction: OP_HLT}, rec)
		count++
	}
	assert.Equal(ROM_SIZE, count)
}

func TestLoadImagePadding(t *testing.T) {
	assert := assert.New(t)

	buf, err := Record{OP_LDI, 7}.Pack()
	assert.NoError(err)

	rom, err := LoadImage(buf[:])
	assert.NoError(err)

	assert.Equal(Record{OP_LDI, 7}, rom[0])
	for n := 1; n < ROM_SIZE; n++ {
		assert.Equal(Record{Instruction: OP_HLT}, rom[n])
	}
}

func TestLoadImageErrors(t *testing.T) {
	assert := assert.New(t)

	// Length not a multiple of the record size.
	rom, err := LoadImage(make([]byte, 12))
	assert.Nil(rom)
	assert.Equal(ErrImageSize(12), err)

	// More records than the ROM holds.
	over := make([]byte, (ROM_SIZE+1)*RECORD_SIZE)
	rom, err = LoadImage(over)
	assert.Nil(rom)
	assert.Equal(ErrImageSize(len(over)), err)

	// Undecodable record inside the image.
	bad := make([]byte, 2*RECORD_SIZE)
	bad[RECORD_SIZE] = 14
	rom, err = LoadImage(bad)
	assert.Nil(rom)

	var tag ErrUnknownTag
	assert.True(errors.As(err, &tag))
	assert.Equal(ErrUnknownTag(14), tag)
}

func TestRomRecordsEarlyReturn(t *testing.T) {
	assert := assert.New(t)

	rom, err := LoadImage(nil)
	assert.NoError(err)

	count := 0
	for range rom.Records() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

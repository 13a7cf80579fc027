package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

const (
	MessageFieldSize = 512
	// MaxMessageLength leaves room for the NUL terminator.
	MaxMessageLength = MessageFieldSize - 1
)

// wireRecord mirrors the C layout shared by requests and responses:
// int seq; bool global; bool system; pid_t origin; pid_t dest; char message[512].
type wireRecord struct {
	Seq     int32
	Global  bool
	System  bool
	_       [2]byte
	Origin  int32
	Dest    int32
	Message [MessageFieldSize]byte
}

// RecordSize is the size in bytes of one request or response on the wire.
var RecordSize = int32(binary.Size(wireRecord{}))

var wireOrder = binary.NativeEndian

func (r Request) MarshalBinary() ([]byte, error) {
	return encodeRecord(wireRecord{
		Seq:     r.SeqLen,
		Global:  r.Global,
		System:  r.System,
		Origin:  int32(r.Origin),
		Dest:    int32(r.Dest),
		Message: packMessage(r.Message),
	})
}

func (r *Request) UnmarshalBinary(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}

	*r = Request{
		SeqLen:  rec.Seq,
		Global:  rec.Global,
		System:  rec.System,
		Origin:  ClientID(rec.Origin),
		Dest:    ClientID(rec.Dest),
		Message: unpackMessage(rec.Message),
	}
	return nil
}

func (r Response) MarshalBinary() ([]byte, error) {
	return encodeRecord(wireRecord{
		Seq:     r.SeqNum,
		Global:  r.Global,
		System:  r.System,
		Origin:  int32(r.Origin),
		Dest:    int32(r.Dest),
		Message: packMessage(r.Message),
	})
}

func (r *Response) UnmarshalBinary(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}

	*r = Response{
		SeqNum:  rec.Seq,
		Global:  rec.Global,
		System:  rec.System,
		Origin:  ClientID(rec.Origin),
		Dest:    ClientID(rec.Dest),
		Message: unpackMessage(rec.Message),
	}
	return nil
}

func encodeRecord(rec wireRecord) ([]byte, error) {
	buf := make([]byte, RecordSize)
	n, err := binary.Encode(buf, wireOrder, rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if n != len(buf) {
		return nil, fmt.Errorf("encode record: wrote %d of %d bytes: %w", n, len(buf), ErrRecordSize)
	}

	return buf, nil
}

func decodeRecord(data []byte) (wireRecord, error) {
	var rec wireRecord
	if len(data) != int(RecordSize) {
		return rec, fmt.Errorf("%w: got %d bytes, want %d", ErrRecordSize, len(data), RecordSize)
	}

	if _, err := binary.Decode(data, wireOrder, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}

	return rec, nil
}

func packMessage(message string) [MessageFieldSize]byte {
	var field [MessageFieldSize]byte
	copy(field[:], TruncateMessage(message))
	return field
}

func unpackMessage(field [MessageFieldSize]byte) string {
	raw := field[:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	return string(raw)
}

// TruncateMessage cuts message to MaxMessageLength bytes without splitting a
// UTF-8 sequence.
func TruncateMessage(message string) string {
	if len(message) <= MaxMessageLength {
		return message
	}

	cut := MaxMessageLength
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}

	return message[:cut]
}

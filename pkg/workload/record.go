package workload

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/dborchard/tracekv/pkg/y/entry"
)

// RecordSize is the width of one bulk-load record: a 4-byte signed key
// followed by a 4-byte signed value, both little endian.
const RecordSize = 8

// RecordReader decodes bulk-load records. A field that cannot be read in
// full ends the stream, so a trailing partial record is dropped silently.
type RecordReader struct {
	r   *bufio.Reader
	buf [4]byte
}

func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{r: bufio.NewReader(r)}
}

// Next returns the next record. ok is false once the data runs out.
func (rr *RecordReader) Next() (rec entry.Pair[int32, int32], ok bool, err error) {
	key, ok, err := rr.readInt32()
	if !ok || err != nil {
		return rec, false, err
	}
	val, ok, err := rr.readInt32()
	if !ok || err != nil {
		return rec, false, err
	}
	return entry.Pair[int32, int32]{Key: key, Val: val}, true, nil
}

func (rr *RecordReader) readInt32() (int32, bool, error) {
	_, err := io.ReadFull(rr.r, rr.buf[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int32(binary.LittleEndian.Uint32(rr.buf[:])), true, nil
}

// RecordWriter encodes bulk-load records. Callers must Flush.
type RecordWriter struct {
	w   *bufio.Writer
	buf [RecordSize]byte
}

func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriter(w)}
}

func (rw *RecordWriter) Write(key, val int32) error {
	binary.LittleEndian.PutUint32(rw.buf[0:4], uint32(key))
	binary.LittleEndian.PutUint32(rw.buf[4:8], uint32(val))
	_, err := rw.w.Write(rw.buf[:])
	return err
}

func (rw *RecordWriter) Flush() error {
	return rw.w.Flush()
}

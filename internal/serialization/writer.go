package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/proto"
)

// Encode writes ckpt to w in the checkpoint binary format.
func Encode(w io.Writer, ckpt *Checkpoint) error {
	payload, err := marshalPayload(ckpt)
	if err != nil {
		return err
	}

	header := make([]byte, 0, headerSize)
	header = append(header, MagicBytes...)
	header = binary.LittleEndian.AppendUint32(header, FormatVersion)
	header = binary.LittleEndian.AppendUint64(header, uint64(len(payload)))
	sum := ComputeChecksum(payload)
	header = append(header, sum[:]...)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Save writes ckpt to path.
//
// The file is written to a temporary sibling first and renamed into place,
// so an interrupted save never leaves a truncated checkpoint behind.
func Save(path string, ckpt *Checkpoint) error {
	var buf bytes.Buffer
	if err := Encode(&buf, ckpt); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // No-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move checkpoint into place: %w", err)
	}
	return nil
}

// marshalPayload encodes ckpt as a deterministic protobuf Struct.
func marshalPayload(ckpt *Checkpoint) ([]byte, error) {
	s, err := ckpt.toStruct()
	if err != nil {
		return nil, err
	}
	payload, err := proto.MarshalOptions{Deterministic: true}.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return payload, nil
}

package sim

import (
	"path/filepath"
	"reflect"
	"testing"
)

// TestMmapTraceReader tests reading a binary trace through the mapping
func TestMmapTraceReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.trace")
	references := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

	if err := WriteBinaryTrace(path, references, CompressionLZ4); err != nil {
		t.Fatalf("WriteBinaryTrace failed: %v", err)
	}

	reader, err := OpenMmapTrace(path)
	if err != nil {
		t.Fatalf("OpenMmapTrace failed: %v", err)
	}

	if !reflect.DeepEqual(reader.References(), references) {
		t.Errorf("Expected %v, got %v", references, reader.References())
	}

	if reader.Size() == 0 {
		t.Error("Expected non-zero mapped size")
	}

	if err := reader.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Closing twice is harmless
	if err := reader.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}

	// Decoded references stay valid after the mapping is gone
	if !reflect.DeepEqual(reader.References(), references) {
		t.Error("References invalid after Close")
	}
}

// TestMmapTraceReaderMissingFile tests the missing file error path
func TestMmapTraceReaderMissingFile(t *testing.T) {
	_, err := OpenMmapTrace(filepath.Join(t.TempDir(), "absent.trace"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !IsErrorCode(err, ErrCodeTraceIO) {
		t.Errorf("Expected ErrCodeTraceIO, got %v", err)
	}
}

// TestMmapTraceReaderCorrupted tests that a damaged file is rejected
func TestMmapTraceReaderCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.trace")
	if err := WriteTextTrace(path, []int{1, 2, 3}); err != nil {
		t.Fatalf("WriteTextTrace failed: %v", err)
	}

	_, err := OpenMmapTrace(path)
	if err == nil {
		t.Fatal("Expected error for non-binary trace")
	}
	if !IsErrorCode(err, ErrCodeTraceCorrupted) {
		t.Errorf("Expected ErrCodeTraceCorrupted, got %v", err)
	}
}

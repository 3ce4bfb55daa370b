package sim

import (
	"os"

	"golang.org/x/sys/unix"
)

// MmapTraceReader reads binary trace files through a read-only memory
// mapping, avoiding a full copy of the file for large traces
type MmapTraceReader struct {
	file       *os.File
	mmapData   []byte
	references []int
}

// OpenMmapTrace memory-maps a binary trace file and decodes it
func OpenMmapTrace(path string) (*MmapTraceReader, error) {
	const op = "OpenMmapTrace"

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrTraceIO(op, err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, ErrTraceIO(op, err)
	}

	if fileInfo.Size() == 0 {
		file.Close()
		return nil, ErrTraceCorrupted(op, "empty trace file")
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(fileInfo.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, ErrTraceIO(op, err)
	}

	references, err := DecodeTrace(data)
	if err != nil {
		unix.Munmap(data)
		file.Close()
		return nil, err
	}

	return &MmapTraceReader{
		file:       file,
		mmapData:   data,
		references: references,
	}, nil
}

// References returns the decoded reference sequence
// The slice stays valid after Close; decoding copies out of the mapping.
func (r *MmapTraceReader) References() []int {
	return r.references
}

// Size returns the mapped file size in bytes
func (r *MmapTraceReader) Size() int {
	return len(r.mmapData)
}

// Close unmaps the file and closes it
func (r *MmapTraceReader) Close() error {
	const op = "Close"

	if r.mmapData != nil {
		if err := unix.Munmap(r.mmapData); err != nil {
			return ErrTraceIO(op, err)
		}
		r.mmapData = nil
	}

	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return ErrTraceIO(op, err)
		}
		r.file = nil
	}

	return nil
}

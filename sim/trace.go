package sim

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CompressionType represents the compression algorithm used for binary traces
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0
	CompressionLZ4    CompressionType = 1
	CompressionSnappy CompressionType = 2
)

// ParseCompression converts a compression name into a CompressionType
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "snappy":
		return CompressionSnappy, nil
	default:
		return CompressionNone, fmt.Errorf("unsupported compression type: %s", name)
	}
}

// Binary trace layout:
// [0-1]: Magic number (0x5452 for trace files)
// [2]: Format version
// [3]: Compression type (0=none, 1=LZ4, 2=Snappy)
// [4-7]: Reference count
// [8-11]: Compressed payload size
// [12-15]: Checksum (CRC32 of uncompressed payload)
// [16+]: Payload: count little-endian int64 page identifiers, compressed

const (
	TraceMagic      = 0x5452
	TraceVersion    = 1
	TraceHeaderSize = 16
)

// EncodeTrace serializes a reference sequence into the binary trace format
func EncodeTrace(references []int, compressionType CompressionType) ([]byte, error) {
	const op = "EncodeTrace"

	payload := make([]byte, len(references)*8)
	for i, ref := range references {
		binary.LittleEndian.PutUint64(payload[i*8:], uint64(int64(ref)))
	}

	checksum := crc32.ChecksumIEEE(payload)

	var compressed []byte

	switch compressionType {
	case CompressionNone:
		compressed = payload

	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return nil, NewSimError(ErrCodeTraceIO, op, "LZ4 compression failed", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible: store the raw payload instead
			compressionType = CompressionNone
			compressed = payload
		} else {
			compressed = buf[:n]
		}

	case CompressionSnappy:
		compressed = snappy.Encode(nil, payload)
		if len(compressed) >= len(payload) && len(payload) > 0 {
			compressionType = CompressionNone
			compressed = payload
		}

	default:
		return nil, fmt.Errorf("unsupported compression type: %d", compressionType)
	}

	out := make([]byte, TraceHeaderSize+len(compressed))
	binary.LittleEndian.PutUint16(out[0:2], TraceMagic)
	out[2] = TraceVersion
	out[3] = byte(compressionType)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(references)))
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(out[12:16], checksum)
	copy(out[TraceHeaderSize:], compressed)

	return out, nil
}

// DecodeTrace deserializes a binary trace back into a reference sequence
func DecodeTrace(data []byte) ([]int, error) {
	const op = "DecodeTrace"

	if len(data) < TraceHeaderSize {
		return nil, ErrTraceCorrupted(op, "data shorter than header")
	}

	if binary.LittleEndian.Uint16(data[0:2]) != TraceMagic {
		return nil, ErrTraceCorrupted(op, "bad magic number")
	}

	if data[2] != TraceVersion {
		return nil, ErrTraceCorrupted(op, fmt.Sprintf("unsupported version %d", data[2]))
	}

	compressionType := CompressionType(data[3])
	count := int(binary.LittleEndian.Uint32(data[4:8]))
	compressedSize := int(binary.LittleEndian.Uint32(data[8:12]))
	checksum := binary.LittleEndian.Uint32(data[12:16])

	if len(data)-TraceHeaderSize != compressedSize {
		return nil, ErrTraceCorrupted(op, "payload size mismatch")
	}

	compressed := data[TraceHeaderSize:]
	payloadSize := count * 8

	var payload []byte

	switch compressionType {
	case CompressionNone:
		payload = compressed

	case CompressionLZ4:
		payload = make([]byte, payloadSize)
		n, err := lz4.UncompressBlock(compressed, payload)
		if err != nil {
			return nil, NewSimError(ErrCodeTraceCorrupted, op, "LZ4 decompression failed", err)
		}
		payload = payload[:n]

	case CompressionSnappy:
		decoded, err := snappy.Decode(nil, compressed)
		if err != nil {
			return nil, NewSimError(ErrCodeTraceCorrupted, op, "Snappy decompression failed", err)
		}
		payload = decoded

	default:
		return nil, ErrTraceCorrupted(op, fmt.Sprintf("unsupported compression type %d", compressionType))
	}

	if len(payload) != payloadSize {
		return nil, ErrTraceCorrupted(op, "decompressed size mismatch")
	}

	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, ErrTraceCorrupted(op, "checksum mismatch")
	}

	references := make([]int, count)
	for i := range references {
		references[i] = int(int64(binary.LittleEndian.Uint64(payload[i*8:])))
	}

	return references, nil
}

// WriteBinaryTrace writes a reference sequence to a binary trace file
func WriteBinaryTrace(path string, references []int, compressionType CompressionType) error {
	const op = "WriteBinaryTrace"

	data, err := EncodeTrace(references, compressionType)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return ErrTraceIO(op, err)
	}

	return nil
}

// ReadBinaryTrace reads a reference sequence from a binary trace file
func ReadBinaryTrace(path string) ([]int, error) {
	const op = "ReadBinaryTrace"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrTraceIO(op, err)
	}

	return DecodeTrace(data)
}

// ParseReferences parses a comma or whitespace separated list of page
// identifiers, e.g. "1,2,3 4 5". An empty input yields an empty sequence.
func ParseReferences(input string) ([]int, error) {
	const op = "ParseReferences"

	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	references := make([]int, 0, len(tokens))
	for i, token := range tokens {
		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, ErrInvalidReference(op, token, i)
		}
		references = append(references, page)
	}

	return references, nil
}

// ReadTextTrace reads a reference sequence from a text file
// Blank lines and lines starting with '#' are skipped; each remaining line
// may hold one or more separated page identifiers.
func ReadTextTrace(path string) ([]int, error) {
	const op = "ReadTextTrace"

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrTraceIO(op, err)
	}
	defer file.Close()

	var references []int

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		refs, err := ParseReferences(line)
		if err != nil {
			return nil, err
		}
		references = append(references, refs...)
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrTraceIO(op, err)
	}

	return references, nil
}

// WriteTextTrace writes a reference sequence to a text file, one page per line
func WriteTextTrace(path string, references []int) error {
	const op = "WriteTextTrace"

	var sb strings.Builder
	for _, ref := range references {
		sb.WriteString(strconv.Itoa(ref))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return ErrTraceIO(op, err)
	}

	return nil
}

// TraceStats summarizes a reference sequence
type TraceStats struct {
	Count    int   // Total references
	Distinct int   // Distinct pages
	MinPage  int   // Smallest page identifier
	MaxPage  int   // Largest page identifier
	Pages    []int // Distinct pages in ascending order
}

// ComputeTraceStats computes summary statistics for a reference sequence
func ComputeTraceStats(references []int) TraceStats {
	if len(references) == 0 {
		return TraceStats{}
	}

	seen := make(map[int]struct{}, len(references))
	minPage := references[0]
	maxPage := references[0]

	for _, ref := range references {
		seen[ref] = struct{}{}
		if ref < minPage {
			minPage = ref
		}
		if ref > maxPage {
			maxPage = ref
		}
	}

	pages := maps.Keys(seen)
	slices.Sort(pages)

	return TraceStats{
		Count:    len(references),
		Distinct: len(pages),
		MinPage:  minPage,
		MaxPage:  maxPage,
		Pages:    pages,
	}
}

package bitmac

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for snapshots.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 block compression (fast, good for hot data).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio, good for cold data).
	CompressionZSTD CompressionType = 2
)

const (
	snapshotMagic   uint32 = 0x42_4D_41_43 // "BMAC"
	snapshotVersion uint8  = 1

	// magic + version + word width + bit order + compression + word count
	snapshotHeaderSize = 4 + 1 + 1 + 1 + 1 + 8

	// uncompressed size + compressed size; compressed size 0 means raw
	blockHeaderSize = 8
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// WriteSnapshot serializes c and its bit order to w. Words are encoded
// little-endian and the payload is framed as a single compressed block; an
// incompressible payload is stored raw. It returns the number of bytes
// written.
func WriteSnapshot[W Word](w io.Writer, c Container[W], order BitOrder, comp CompressionType) (int64, error) {
	header := make([]byte, snapshotHeaderSize)
	binary.LittleEndian.PutUint32(header[0:], snapshotMagic)
	header[4] = snapshotVersion
	header[5] = uint8(wordBytes[W]())
	header[6] = uint8(order)
	header[7] = uint8(comp)
	binary.LittleEndian.PutUint64(header[8:], uint64(c.Words()))

	n, err := w.Write(header)
	written := int64(n)
	if err != nil {
		return written, err
	}

	payload := encodeWords(c)
	block, err := compressBlock(payload, comp)
	if err != nil {
		return written, err
	}

	n, err = w.Write(block)
	written += int64(n)
	return written, err
}

// ReadSnapshot deserializes a snapshot produced by WriteSnapshot into a fresh
// Slice. The word width recorded in the snapshot must match W.
func ReadSnapshot[W Word](r io.Reader) (*Slice[W], BitOrder, error) {
	header := make([]byte, snapshotHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, 0, err
	}

	if magic := binary.LittleEndian.Uint32(header[0:]); magic != snapshotMagic {
		return nil, 0, fmt.Errorf("bad snapshot magic 0x%08x", magic)
	}

	if version := header[4]; version != snapshotVersion {
		return nil, 0, fmt.Errorf("unsupported snapshot version %d", version)
	}

	if width := int(header[5]); width != wordBytes[W]() {
		return nil, 0, fmt.Errorf("snapshot word width is %d bytes, want %d", width, wordBytes[W]())
	}

	order := BitOrder(header[6])
	comp := CompressionType(header[7])
	words := binary.LittleEndian.Uint64(header[8:])

	payload, err := readBlock(r, comp)
	if err != nil {
		return nil, 0, err
	}

	if uint64(len(payload)) != words*uint64(wordBytes[W]()) {
		return nil, 0, errors.New("snapshot payload size mismatch")
	}

	return SliceFrom(decodeWords[W](payload, int(words))), order, nil
}

// encodeWords packs a container's words little-endian into a byte payload.
func encodeWords[W Word](c Container[W]) []byte {
	width := wordBytes[W]()
	payload := make([]byte, c.Words()*width)
	for i := 0; i < c.Words(); i++ {
		w := uint64(c.WordAt(i))
		for b := 0; b < width; b++ {
			payload[i*width+b] = uint8(w >> (b * 8))
		}
	}
	return payload
}

// decodeWords unpacks a little-endian byte payload into words.
func decodeWords[W Word](payload []byte, words int) []W {
	width := wordBytes[W]()
	out := make([]W, words)
	for i := 0; i < words; i++ {
		var w uint64
		for b := 0; b < width; b++ {
			w |= uint64(payload[i*width+b]) << (b * 8)
		}
		out[i] = W(w)
	}
	return out
}

// compressBlock frames and compresses a payload.
// Format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
func compressBlock(data []byte, comp CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch comp {
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed, err = compressBlockZSTD(data)
	}

	if err != nil {
		return nil, err
	}

	// If compression doesn't help (ratio > 0.9), store uncompressed
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// readBlock reads and decompresses a framed block.
func readBlock(r io.Reader, comp CompressionType) ([]byte, error) {
	header := make([]byte, blockHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	uncompressedSize := binary.LittleEndian.Uint32(header[0:])
	compressedSize := binary.LittleEndian.Uint32(header[4:])

	if compressedSize == 0 {
		data := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	compressedData := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressedData); err != nil {
		return nil, err
	}

	result := make([]byte, uncompressedSize)

	switch comp {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unknown compression type %d", comp)
	}
}

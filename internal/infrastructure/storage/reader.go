package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrCorrupt            = errors.New("corrupt journal")
)

// maxPrealloc ограничивает ёмкость, выделяемую по EventCount из заголовка:
// заголовок не доверенный, дальше срез растёт через append.
const maxPrealloc = 4096

// Load читает журнал из файла.
func (s *JournalService) Load(path string) (*Session, error) {
	return ReadFile(path)
}

func ReadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if err := checkSize(f, info.Size()); err != nil {
		return nil, fmt.Errorf("read journal %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	session, err := readBinary(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read journal %s: %w", path, err)
	}
	return session, nil
}

// checkSize сверяет заявленное в заголовке число событий с размером файла.
func checkSize(r io.Reader, size int64) error {
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	body := size - int64(binary.Size(header))
	want := int64(header.EventCount) * int64(binary.Size(eventFrame{}))
	if want > body {
		return fmt.Errorf("%w: header claims %d events, file holds %d bytes of frames",
			ErrCorrupt, header.EventCount, body)
	}
	return nil
}

func readBinary(r io.Reader) (*Session, error) {
	// 1. Заголовок целиком
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}

	session := &Session{
		Seed:      header.Seed,
		Shard:     header.Shard,
		Timestamp: header.Timestamp,
		Records:   make([]Record, 0, min(header.EventCount, maxPrealloc)),
	}

	// 2. События
	for i := uint32(0); i < header.EventCount; i++ {
		var frame eventFrame
		if err := binary.Read(r, binary.LittleEndian, &frame); err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrCorrupt, i, err)
		}
		session.Records = append(session.Records, recordFromFrame(frame))
	}
	return session, nil
}

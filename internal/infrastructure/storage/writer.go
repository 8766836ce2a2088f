package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `ODJL` // 4 байта
	Version1    uint32 = 1
	Extension          = ".odj"
)

// JournalFileHeader — точное представление заголовка файла.
// binary.Write пишет его целиком: тут только массивы и числа.
type JournalFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	Shard      uint8   // 1 байт
	EventCount uint32  // 4 байта
}

// eventFrame — запись фиксированного размера для одного события.
type eventFrame struct {
	Turn    int32  // 4
	Kind    uint8  // 1
	Action  uint8  // 1
	Entity  uint64 // 8
	TargetX int32  // 4
	TargetY int32  // 4
	Value   uint32 // 4
}

type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) *JournalService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &JournalService{SaveDir: dir}
}

// Save пишет сессию в SaveDir и возвращает путь к файлу.
func (s *JournalService) Save(session *Session) (string, error) {
	filename := fmt.Sprintf("journal_%d_shard%d_%d%s", session.Seed, session.Shard, session.Timestamp, Extension)
	path := filepath.Join(s.SaveDir, filename)
	return path, WriteFile(path, session)
}

// WriteFile пишет сессию по указанному пути.
func WriteFile(path string, session *Session) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return fmt.Errorf("write journal %s: %w", path, err)
	}
	return bw.Flush()
}

func writeBinary(w io.Writer, s *Session) error {
	// 1. Глобальный заголовок
	header := JournalFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Timestamp:  s.Timestamp,
		Shard:      s.Shard,
		EventCount: uint32(len(s.Records)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. События, каждое одной командой
	for _, r := range s.Records {
		frame := frameFromRecord(r)
		if err := binary.Write(w, binary.LittleEndian, &frame); err != nil {
			return err
		}
	}
	return nil
}

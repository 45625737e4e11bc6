package vectors

import (
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// FileOpener opens paths on the local file system.
type FileOpener struct{}

func (FileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// ReadFile opens and decodes the vector file at name.
func ReadFile(log logger.Logger, opener Opener, codec Codec, name string) (File, error) {
	r, err := opener.Open(name)
	if err != nil {
		return File{}, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	f, err := codec.Decode(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}
	log.Debugf("read %d vectors from %s", len(f.Vectors), name)
	return f, nil
}

// WriteFile encodes f and writes it to name, replacing any existing file.
func WriteFile(log logger.Logger, codec Codec, name string, f File) error {
	data, err := codec.Encode(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return err
	}
	log.Debugf("wrote %d vectors to %s", len(f.Vectors), name)
	return nil
}

package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads a file with a size cap.
//
// max == 0 reads the whole file, max > 0 reads the first max bytes and
// max < 0 reads the last |max| bytes. A cap larger than the file reads the
// whole file.
func ReadFileData(filePath string, max int) (data []byte, err error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if max == 0 {
		return io.ReadAll(f)
	}

	if max > 0 {
		data = make([]byte, max)
		n, err := io.ReadFull(f, data)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = nil
		}
		return data[:n], err
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	tail := int64(-max)
	if tail > info.Size() {
		tail = info.Size()
	}
	if _, err = f.Seek(-tail, io.SeekEnd); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}

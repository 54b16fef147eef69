package filesystem

import "io"

type syncWriter interface {
	io.WriteCloser
	Sync() error
}

// writeSync writes data to f, flushes it to stable storage and closes f. The
// first error wins.
func writeSync(f syncWriter, data []byte) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

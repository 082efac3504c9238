package handler

import (
	"io"
	"os"

	"github.com/HMasataka/rotation/domain/entity"
)

// Output is created before the search starts so an unwritable path fails fast.
// Nothing is written to it until the whole schedule exists.
type Output struct {
	file *os.File
}

func CreateOutput(path string) (*Output, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, entity.ErrOutputCreateFailed.WithCause(err)
	}

	return &Output{file: file}, nil
}

func (o *Output) Name() string {
	return o.file.Name()
}

func (o *Output) Write(schedule *entity.Schedule) error {
	if err := WriteSchedule(o.file, schedule); err != nil {
		_ = o.Discard()
		return err
	}

	if err := o.file.Close(); err != nil {
		return entity.ErrOutputCloseFailed.WithCause(err)
	}

	return nil
}

// Discard closes and removes the file of a failed run.
func (o *Output) Discard() error {
	_ = o.file.Close()
	return os.Remove(o.file.Name())
}

func WriteSchedule(w io.Writer, schedule *entity.Schedule) error {
	if _, err := io.WriteString(w, FormatSchedule(schedule)); err != nil {
		return entity.ErrOutputWriteFailed.WithCause(err)
	}

	return nil
}

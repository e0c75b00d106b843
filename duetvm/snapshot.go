package duetvm

import (
	"encoding/gob"
	"io"
)

func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return nil
}

func (m *Machine) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var restored Machine
	if err := dec.Decode(&restored); err != nil {
		return err
	}
	*m = restored
	return nil
}

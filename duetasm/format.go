package duetasm

import (
	"bufio"
	"io"

	"github.com/reusee/duet/duetvm"
)

func Format(w io.Writer, program []duetvm.Instruction) error {
	bw := bufio.NewWriter(w)
	for _, inst := range program {
		if _, err := bw.WriteString(inst.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

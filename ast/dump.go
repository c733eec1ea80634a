package ast

import (
	"bytes"
	"io"

	"github.com/kr/pretty"
)

// Dump writes a human-readable, recursively expanded form of n to w.
func Dump(w io.Writer, n interface{}) error {
	_, err := pretty.Fprintf(w, "%# v", n)
	return err
}

// DumpString returns the Dump output for n as a string.
func DumpString(n interface{}) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, n); err != nil {
		panic(err)
	}
	return buf.String()
}

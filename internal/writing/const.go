package writing

import "github.com/oesand/reqkit/specs"

const writeHeadOp specs.OpName = "write head"

var (
	rawColonSpace = []byte(": ")
	rawCrlf       = []byte("\r\n")

	httpV11 = []byte("HTTP/1.1")
)

package docutil

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// Kind identifies a supported document type.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindDGN
	KindDWG
)

// Kinds lists the supported kinds in report order.
var Kinds = []Kind{KindPDF, KindDGN, KindDWG}

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindDGN:
		return "DGN"
	case KindDWG:
		return "DWG"
	default:
		return "unknown"
	}
}

// IsDrawing reports whether k is a CAD drawing format whose geometry is not read.
func (k Kind) IsDrawing() bool {
	return k == KindDGN || k == KindDWG
}

// HeaderSize is the number of leading bytes inspected by the sniffer.
const HeaderSize = 262

var (
	dwgType = filetype.NewType("dwg", "image/vnd.dwg")
	dgnType = filetype.NewType("dgn", "image/vnd.dgn")

	dwgMagic   = []byte("AC10")
	dgnV7Magic = []byte{0x09, 0xfe, 0x02}
	oleMagic   = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

func init() {
	filetype.AddMatcher(dwgType, matchDWG)
	filetype.AddMatcher(dgnType, matchDGN)
}

// FromExt maps a file extension to a Kind. The leading dot is optional and
// the comparison is case-insensitive.
func FromExt(ext string) Kind {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return KindPDF
	case "dgn":
		return KindDGN
	case "dwg":
		return KindDWG
	default:
		return KindUnknown
	}
}

// FromPath classifies a file by its extension.
func FromPath(path string) Kind {
	return FromExt(filepath.Ext(path))
}

// MatchHeader reports whether header carries the signature expected for k.
func MatchHeader(k Kind, header []byte) bool {
	switch k {
	case KindPDF:
		return filetype.IsType(header, matchers.TypePdf)
	case KindDGN:
		return filetype.IsType(header, dgnType)
	case KindDWG:
		return filetype.IsType(header, dwgType)
	default:
		return false
	}
}

// SniffReader reads up to HeaderSize bytes from r and checks them against k.
// Short files are not an error; they simply fail to match.
func SniffReader(r io.Reader, k Kind) (bool, error) {
	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}

	return MatchHeader(k, header[:n]), nil
}

func matchDWG(buf []byte) bool {
	if len(buf) < 6 || !hasPrefix(buf, dwgMagic) {
		return false
	}
	return isDigit(buf[4]) && isDigit(buf[5])
}

// DGN v7 files start with a type-9 element header (2D or 3D flag in the
// first byte); v8 files are OLE compound documents.
func matchDGN(buf []byte) bool {
	if len(buf) >= 4 && (buf[0] == 0x08 || buf[0] == 0xc8) && hasPrefix(buf[1:], dgnV7Magic) {
		return true
	}
	return hasPrefix(buf, oleMagic)
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

package measure

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/afero"

	"filecredit/internal/credit"
	"filecredit/internal/domain"
	"filecredit/internal/logger"
	"filecredit/pkg/docutil"
)

var (
	errNoSignature = errors.New("missing %PDF signature")
	errNoPages     = errors.New("document has no pages")
)

func init() {
	api.DisableConfigDir()
}

// Measurement is the page geometry read from one file. Dims is empty for
// drawings, which are charged a flat page count.
type Measurement struct {
	Kind docutil.Kind
	Dims []credit.Dim
}

// Result scores the measurement.
func (m Measurement) Result() credit.Result {
	if m.Kind.IsDrawing() {
		return credit.ForDrawing()
	}
	return credit.ForPDF(m.Dims)
}

type Measurer struct {
	fs   afero.Fs
	conf *model.Configuration
}

func New(fsys afero.Fs) *Measurer {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Measurer{fs: fsys, conf: conf}
}

// Measure reads the page geometry of path. Errors are *domain.Error values
// coded unreadable_document or access_denied.
func (m *Measurer) Measure(path string, kind docutil.Kind) (Measurement, error) {
	file, err := m.fs.Open(path)
	if err != nil {
		return Measurement{}, openError(path, err)
	}
	defer file.Close()

	matched, err := docutil.SniffReader(file, kind)
	if err != nil {
		return Measurement{}, openError(path, err)
	}

	switch kind {
	case docutil.KindDGN, docutil.KindDWG:
		if !matched {
			logger.Get().Warn().Str("path", path).Str("type", kind.String()).Msg("file header does not match its extension; scoring by extension")
		}
		return Measurement{Kind: kind}, nil
	case docutil.KindPDF:
		if !matched {
			return Measurement{}, unreadable(path, errNoSignature)
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return Measurement{}, unreadable(path, err)
		}
		dims, err := m.pageDims(file)
		if err != nil {
			return Measurement{}, unreadable(path, err)
		}
		if len(dims) == 0 {
			return Measurement{}, unreadable(path, errNoPages)
		}
		return Measurement{Kind: kind, Dims: dims}, nil
	default:
		return Measurement{}, unreadable(path, fmt.Errorf("unsupported type %s", kind))
	}
}

func (m *Measurer) pageDims(rs io.ReadSeeker) (dims []credit.Dim, err error) {
	// pdfcpu panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			dims = nil
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	pages, err := api.PageDims(rs, m.conf)
	if err != nil {
		return nil, err
	}

	dims = make([]credit.Dim, 0, len(pages))
	for _, p := range pages {
		dims = append(dims, credit.Dim{Width: p.Width, Height: p.Height})
	}
	return dims, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &domain.Error{Code: domain.ErrCodeAccessDenied, Path: path, Err: err}
	}
	return unreadable(path, err)
}

func unreadable(path string, err error) error {
	return &domain.Error{Code: domain.ErrCodeUnreadableDocument, Path: path, Err: err}
}

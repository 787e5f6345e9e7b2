package mosaic

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the pixelation run.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDecode
	KindEncode
	KindRatio
	KindFetch
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindRatio:
		return "ratio"
	case KindFetch:
		return "fetch"
	}
	return "unknown"
}

// ErrInvalidRatio is returned when the block size is below 1.
var ErrInvalidRatio = errors.New("block ratio must be at least 1")

type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %s: %s", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %s", e.Kind, e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func checkRatio(op string, ratio int) error {
	if ratio < 1 {
		return &Error{Kind: KindRatio, Op: op, Err: fmt.Errorf("%w: got %d", ErrInvalidRatio, ratio)}
	}
	return nil
}

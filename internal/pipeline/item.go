package pipeline

import "dnaflow/internal/sequence"

// Kind tags what an Item carries.
type Kind uint8

const (
	KindSequence Kind = iota + 1
	KindEndOfStream
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindEndOfStream:
		return "end-of-stream"
	default:
		return "invalid"
	}
}

// Item is what travels through the queue. The zero Item is invalid.
type Item struct {
	Kind Kind
	Seq  sequence.Sequence
}

func SequenceItem(s sequence.Sequence) Item { return Item{Kind: KindSequence, Seq: s} }

// EndOfStream tells exactly one analyzer to stop.
func EndOfStream() Item { return Item{Kind: KindEndOfStream} }

// IsEnd reports whether it is an end-of-stream item.
func (it Item) IsEnd() bool { return it.Kind == KindEndOfStream }

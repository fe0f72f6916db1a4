package ibfutil

// ContainsResult is the three-way outcome of a membership probe: a plain
// Bloom filter only has two, but a pure bucket lets IBF and IBD give a
// definitive answer in the common case instead of always saying "maybe".
type ContainsResult byte

const (
	NotFound ContainsResult = iota
	MightExist
	Exists
)

func (r ContainsResult) String() string {
	switch r {
	case NotFound:
		return "not_found"
	case MightExist:
		return "might_exist"
	case Exists:
		return "exists"
	default:
		return "invalid"
	}
}

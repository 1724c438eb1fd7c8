package domain

// Item is the canonical suggestion shape every source entry is normalized into
type Item struct {
	Value    string // written into the input on selection
	Label    string // shown in the suggestion list
	Metadata any    // nil when the source entry carried none
}

// SourceKind tells which resolver backs an instance
type SourceKind int

const (
	SourceStatic SourceKind = iota
	SourceRemote
)

func (k SourceKind) String() string {
	switch k {
	case SourceStatic:
		return "static"
	case SourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// SourceSpec describes where suggestions come from. It is fixed at creation.
type SourceSpec struct {
	Kind     SourceKind
	Items    []any  // raw entries for SourceStatic
	Endpoint string // URL template for SourceRemote
}

// StaticSource builds a spec over an in-memory collection
func StaticSource(items ...any) SourceSpec {
	return SourceSpec{Kind: SourceStatic, Items: items}
}

// RemoteSource builds a spec over a JSON endpoint
func RemoteSource(endpoint string) SourceSpec {
	return SourceSpec{Kind: SourceRemote, Endpoint: endpoint}
}

// QueryRequest is one resolution request issued by an instance
type QueryRequest struct {
	Seq  uint64
	Text string
}

// Element is the bound input as seen by callbacks
type Element interface {
	ID() string
	Value() string
	SetValue(value string)
}

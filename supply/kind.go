package supply

// Kind selects which supply figure is reported for a token.
type Kind string

const (
	KindMax         Kind = "max"
	KindCirculating Kind = "circulating"
	KindTotal       Kind = "total"
)

// ParseKind parses a supply kind. Matching is exact.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindMax, KindCirculating, KindTotal:
		return k, true
	default:
		return "", false
	}
}

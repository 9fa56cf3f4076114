package sequent

type Sign int

const (
	F Sign = iota
	T
)

func (s Sign) String() string {
	if s == T {
		return "T"
	}
	return "F"
}

// Negate flips the sign.
func (s Sign) Negate() Sign {
	if s == T {
		return F
	}
	return T
}

type Kind int

const (
	KindAtom Kind = iota
	KindAlpha
	KindBeta
)

func (k Kind) String() string {
	return map[Kind]string{
		KindAtom:  "atom",
		KindAlpha: "alpha",
		KindBeta:  "beta",
	}[k]
}

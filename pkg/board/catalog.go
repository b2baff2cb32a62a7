package board

// Token is a placeable icon drawn from the fixed catalog. Tag is an opaque
// visual reference for the presentation layer.
type Token struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}

// LockTokenID identifies the distinguished token that locks its own cell
// without requiring a pairing partner.
const LockTokenID = "lock"

// IsLock reports whether the token is the distinguished lock token.
func (t Token) IsLock() bool {
	return t.ID == LockTokenID
}

// catalog is the fixed, ordered token set. The lock token is last so the
// widget renders it at the end of the palette.
var catalog = []Token{
	{ID: "wine", Tag: "icon-wine"},
	{ID: "bread", Tag: "icon-bread"},
	{ID: "fish", Tag: "icon-fish"},
	{ID: "sword", Tag: "icon-sword"},
	{ID: "shield", Tag: "icon-shield"},
	{ID: "coin", Tag: "icon-coin"},
	{ID: "harp", Tag: "icon-harp"},
	{ID: LockTokenID, Tag: "icon-lock"},
}

// Catalog returns a copy of the fixed, ordered token catalog.
func Catalog() []Token {
	tokens := make([]Token, len(catalog))
	copy(tokens, catalog)
	return tokens
}

// TokenByID looks up a catalog token by its id.
func TokenByID(id string) (Token, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

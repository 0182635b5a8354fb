package token

import "testing"

func lexAll(src string) []*Token {
	l := NewLexer(NewStringSource(src), "<test>")
	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	toks := lexAll("let x = foo")
	wantKinds := []Kind{KW_LET, IDENT, ASSIGN, IDENT, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %d, got %d", i, k, toks[i].Kind)
		}
	}
	if toks[1].Lexeme != "x" {
		t.Errorf("expected lexeme x, got %q", toks[1].Lexeme)
	}
}

func TestLexNumberSuffixesAndBases(t *testing.T) {
	cases := []struct {
		src       string
		digits    string
		base      int
		suffix    byte
		hasDot    bool
	}{
		{"3i", "3", 10, 'i', false},
		{"4l", "4", 10, 'l', false},
		{"3.5d", "3.5", 10, 'd', true},
		{"0x1Fu", "0x1F", 16, 'u', false},
		{"0b101", "0b101", 2, 0, false},
		{"0o17b", "0o17", 8, 'b', false},
	}

	for _, c := range cases {
		toks := lexAll(c.src)
		tok := toks[0]
		if tok.Kind != NUMBER {
			t.Fatalf("%s: expected NUMBER, got kind %d", c.src, tok.Kind)
		}
		if tok.NumDigits != c.digits {
			t.Errorf("%s: expected digits %q, got %q", c.src, c.digits, tok.NumDigits)
		}
		if tok.NumBase != c.base {
			t.Errorf("%s: expected base %d, got %d", c.src, c.base, tok.NumBase)
		}
		if tok.NumSuffix != c.suffix {
			t.Errorf("%s: expected suffix %q, got %q", c.src, c.suffix, tok.NumSuffix)
		}
		if tok.NumHasDot != c.hasDot {
			t.Errorf("%s: expected hasDot=%v, got %v", c.src, c.hasDot, tok.NumHasDot)
		}
	}
}

func TestLexStringEscapesAndKind(t *testing.T) {
	toks := lexAll(`"hi\n"c`)
	tok := toks[0]
	if tok.Kind != STRING {
		t.Fatalf("expected STRING, got kind %d", tok.Kind)
	}
	if tok.StrValue != "hi\n" {
		t.Errorf("expected decoded value %q, got %q", "hi\n", tok.StrValue)
	}
	if tok.StrKind != 'c' {
		t.Errorf("expected string kind 'c', got %q", tok.StrKind)
	}
}

func TestLexCharLiteral(t *testing.T) {
	toks := lexAll(`'\t'`)
	tok := toks[0]
	if tok.Kind != CHAR {
		t.Fatalf("expected CHAR, got kind %d", tok.Kind)
	}
	if tok.CharValue != '\t' {
		t.Errorf("expected tab byte, got %v", tok.CharValue)
	}
}

func TestLexMultiCharOperatorTieBreaking(t *testing.T) {
	toks := lexAll("<= << < = == != + +=")
	wantKinds := []Kind{LE, SHL, LT, ASSIGN, EQ, NEQ, PLUS, PLUS_EQ, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %d, got %d", i, k, toks[i].Kind)
		}
	}
}

func TestLexLineAndBlockComments(t *testing.T) {
	toks := lexAll("1i // comment\n/* block */ 2i")
	wantKinds := []Kind{NUMBER, NUMBER, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	if toks[0].NumDigits != "1" || toks[1].NumDigits != "2" {
		t.Errorf("expected digits 1 and 2, got %q and %q", toks[0].NumDigits, toks[1].NumDigits)
	}
}

func TestLexDoubleColon(t *testing.T) {
	toks := lexAll("(Vec)::len")
	wantKinds := []Kind{LPAREN, IDENT, RPAREN, COLONCOLON, IDENT, EOF}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %d, got %d", i, k, toks[i].Kind)
		}
	}
}

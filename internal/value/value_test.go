package value

import "testing"

func mustRat(t *testing.T, num, den int64) Rational {
	t.Helper()
	r, err := NewRational(num, den)
	if err != nil {
		t.Fatalf("NewRational(%d,%d): %v", num, den, err)
	}
	return r
}

func TestRationalReducesAndNormalizes(t *testing.T) {
	r := mustRat(t, 4, -8)
	if got := r.String(); got != "-1/2" {
		t.Fatalf("got %s, want -1/2", got)
	}
}

func TestRationalArithmetic(t *testing.T) {
	a := mustRat(t, 1, 2)
	b := mustRat(t, 1, 3)
	if got := a.Add(b).String(); got != "5/6" {
		t.Fatalf("1/2+1/3 = %s, want 5/6", got)
	}
	if got := a.Mul(b).String(); got != "1/6" {
		t.Fatalf("1/2*1/3 = %s, want 1/6", got)
	}
}

func TestRationalDivByZero(t *testing.T) {
	a := RationalInt(1)
	if _, err := a.Div(Zero); err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestComplexMultiplyCollapses(t *testing.T) {
	// i * i = -1, and the result must collapse to Rational.
	i := NewComplex(Zero, One)
	got := i.Mul(i)
	r, ok := CollapseComplex(got)
	if !ok {
		t.Fatalf("expected i*i to collapse, got %s", FromComplex(got))
	}
	if !r.Equal(RationalInt(-1)) {
		t.Fatalf("i*i = %s, want -1", r)
	}
}

func TestComplexString(t *testing.T) {
	tests := []struct {
		c    Complex
		want string
	}{
		{NewComplex(RationalInt(4), RationalInt(7)), "4 + 7i"},
		{NewComplex(RationalInt(4), RationalInt(-7)), "4 - 7i"},
		{NewComplex(Zero, One), "i"},
		{NewComplex(Zero, RationalInt(3)), "3i"},
		{NewComplex(Zero, Zero), "0"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestValueAddPromotesToComplex(t *testing.T) {
	r := FromRational(RationalInt(2))
	c := FromComplex(NewComplex(RationalInt(3), One))
	got, err := Add(r, c)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.String() != "5 + i" {
		t.Fatalf("got %s, want 5 + i", got)
	}
}

func TestMatrixInverse(t *testing.T) {
	rows := [][]Value{
		{FromRational(RationalInt(1)), FromRational(RationalInt(2))},
		{FromRational(RationalInt(3)), FromRational(RationalInt(4))},
	}
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	want := "[ [ -2 , 1 ] ; [ 3/2 , -1/2 ] ]"
	if got := inv.String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	prod, err := m.Mul(inv)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	ident := Identity(2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			a, _ := prod.At(r, c).AsRational()
			b, _ := ident.At(r, c).AsRational()
			if !a.Equal(b) {
				t.Fatalf("M*inv(M) != I at (%d,%d): %s vs %s", r, c, a, b)
			}
		}
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	rows := [][]Value{
		{FromRational(RationalInt(1)), FromRational(RationalInt(2))},
		{FromRational(RationalInt(2)), FromRational(RationalInt(4))},
	}
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if _, err := m.Inverse(); err == nil {
		t.Fatal("expected a singular matrix error")
	}
}

func TestMatrixShapeMismatch(t *testing.T) {
	a, _ := FromRows([][]Value{{FromRational(One)}})
	b, _ := FromRows([][]Value{{FromRational(One), FromRational(One)}})
	if _, err := a.Add(b); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestPowIntegerRequired(t *testing.T) {
	base := FromRational(RationalInt(2))
	exp := FromRational(mustRat(t, 1, 2))
	if _, err := Pow(base, exp); err == nil {
		t.Fatal("expected error for non-integer exponent")
	}
}

func TestPowNegativeScalar(t *testing.T) {
	base := FromRational(RationalInt(2))
	exp := FromRational(RationalInt(-1))
	got, err := Pow(base, exp)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	if got.String() != "1/2" {
		t.Fatalf("2^-1 = %s, want 1/2", got)
	}
}

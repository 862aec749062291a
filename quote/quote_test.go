package quote

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		quote byte
		want  string
	}{
		{"plain", `a`, '\'', `'a'`},
		{"empty", ``, '\'', `''`},
		{"quote", `it's`, '\'', `'it\'s'`},
		{"other quote", `it's`, '"', `"it's"`},
		{"backslash", `\HH\Foo`, '\'', `'\\HH\\Foo'`},
		{"double", `a"b`, '"', `"a\"b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.s, tt.quote); got != tt.want {
				t.Errorf("Quote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name  string
		lit   string
		want  string
		n     int
		valid bool
	}{
		{"plain", `'a'`, `a`, 3, true},
		{"rest", `'a' => int`, `a`, 3, true},
		{"escaped quote", `'it\'s'`, `it's`, 7, true},
		{"escaped backslash", `"a\\b"`, `a\b`, 6, true},
		{"kept escape", `'a\nb'`, `a\nb`, 6, true},
		{"other quote", `"it's"`, `it's`, 6, true},
		{"unterminated", `'ab`, `ab`, 3, false},
		{"trailing backslash", `'a\`, `a\`, 3, false},
		{"empty", ``, ``, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, ok := Unquote(tt.lit)
			if got != tt.want || n != tt.n || ok != tt.valid {
				t.Errorf("Unquote() = %q, %d, %v, want %q, %d, %v",
					got, n, ok, tt.want, tt.n, tt.valid)
			}
		})
	}

	for _, s := range []string{``, `a`, `it's`, `\`, `a\'b`, `"'`} {
		got, _, ok := Unquote(Quote(s, '\''))
		if !ok || got != s {
			t.Errorf("Unquote(Quote(%q)) = %q, %v", s, got, ok)
		}
	}
}

package quoting

import "testing"

func TestDoubleQuote(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"users", `"users"`},
		{"first name", `"first name"`},
		{`we"ird`, `"we""ird"`},
		{"", `""`},
	}
	for _, c := range cases {
		if got := DoubleQuote(c.in); got != c.want {
			t.Errorf("DoubleQuote(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestBacktick(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"users", "`users`"},
		{"we`ird", "`we``ird`"},
		{"", "``"},
	}
	for _, c := range cases {
		if got := Backtick(c.in); got != c.want {
			t.Errorf("Backtick(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"user_name", `user\_name`},
		{`back\slash`, `back\\slash`},
		{`mix%_\`, `mix\%\_\\`},
	}
	for _, c := range cases {
		if got := EscapeLikePattern(c.in); got != c.want {
			t.Errorf("EscapeLikePattern(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

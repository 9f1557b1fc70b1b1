package cell

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"plain", "What is X?", "What is X?"},
		{"trim", "  padded \t", "padded"},
		{"carriage return", "a\r\nb", "a<br>b"},
		{"pipe", "a|b", "a｜b"},
		{"newline", "line1\nline2", "line1<br>line2"},
		{"blank lines collapse", "line1\n\n\nline2", "line1<br>line2"},
		{"whitespace between breaks", "line1\n  \n\tline2", "line1<br>line2"},
		{"ideographic space after break", "一行目\n　二行目", "一行目<br>二行目"},
		{"literal marker runs", "a<br> <br>b", "a<br>b"},
		{"line separator between markers", "a<br>\u2028<br>b", "a<br>b"},
		{"paragraph separator and NEL", "a<br>\u2029\u0085<br>b", "a<br>b"},
		{"information separators", "a<br>\x1c\x1f<br>b", "a<br>b"},
		{"leading and trailing newlines", "\n\nbody\n\n", "body"},
		{"space before break kept", "a \nb", "a <br>b"},
		{"integer", 42, "42"},
		{"float", 1.5, "1.5"},
		{"whole float", float64(3), "3"},
		{"stringer", stringer{}, "from stringer"},
		{"only whitespace", " \n \r\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"a|b\r\nc\n\n<br> d",
		"<br>\n<br>|\r",
		" \n<br>\t<br> x ",
		"<<br>br>\n>",
		"質問\r\n|回答|\n\n",
	}
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}

	idempotent := func(s string) bool {
		once := Normalize(s)
		return Normalize(once) == once
	}
	if err := quick.Check(idempotent, nil); err != nil {
		t.Error(err)
	}
}

func TestNormalize_CleanTextUnchanged(t *testing.T) {
	for _, s := range []string{"already clean", "一行目<br>二行目", "a｜b", "x <br>y"} {
		assert.Equal(t, s, Normalize(s))
	}
}

func FuzzNormalizeIdempotent(f *testing.F) {
	f.Add("a|b\r\nc")
	f.Add("\n\n<br> <br>\n")
	f.Add("a<br>\u2028\x1e<br>b")
	f.Add("日本語\nEnglish")
	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}

func TestIsTargetLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"hiragana", "こんにちは", true},
		{"katakana", "カタカナ", true},
		{"kanji", "質問", true},
		{"lower bound", "぀", true},
		{"upper bound of kana block", "㷿", true},
		{"ideograph bounds", "一 鿿", true},
		{"single char in english", "What is 質?", true},
		{"ascii", "What is X?", false},
		{"empty", "", false},
		{"below range", "〿", false},
		{"between ranges", "䷀", false},
		{"above range", "ꀀ", false},
		{"hangul", "안녕하세요", false},
		{"non-string", 123, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTargetLanguage(tt.in))
		})
	}
}

func TestExpandLineBreaks(t *testing.T) {
	assert.Equal(t, "a\nb\nc", ExpandLineBreaks("a<br>b<br>c"))
	assert.Equal(t, "a<br>b", Normalize(ExpandLineBreaks("a<br>b")))
}

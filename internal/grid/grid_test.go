package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"even remainder", "Hi", 10, "    Hi    "},
		{"odd remainder goes right", "Hi", 9, "   Hi    "},
		{"exact width", "HELLO", 5, "HELLO"},
		{"too long is truncated", "TELETEXT", 4, "TELE"},
		{"empty", "", 4, "    "},
		{"multibyte counts runes", "▲▼", 6, "  ▲▼  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CenterText(tt.in, tt.width))
		})
	}
}

func TestJustifyText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"extra spaces go left", "a b c", 8, "a   b  c"},
		{"even spread", "ab cd", 7, "ab   cd"},
		{"single word left aligns", "word", 8, "word    "},
		{"collapses inner spaces", "a    b", 5, "a   b"},
		{"too long falls back to fit", "aaaa bbbb", 6, "aaaa b"},
		{"blank", "   ", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JustifyText(tt.in, tt.width)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.width, Len(got))
		})
	}
}

func TestFitAndPad(t *testing.T) {
	assert.Equal(t, "ab  ", Fit("ab", 4))
	assert.Equal(t, "abcd", Fit("abcdef", 4))
	assert.Equal(t, "══", Fit("═══", 2))
	assert.Equal(t, "  P100", PadLeft("P100", 6))
	assert.Equal(t, "toolong", PadRight("toolong", 3))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in       string
		expected Alignment
		wantErr  bool
	}{
		{"left", AlignLeft, false},
		{"", AlignLeft, false},
		{"CENTER", AlignCenter, false},
		{" justify ", AlignJustify, false},
		{"diagonal", AlignLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Alignment {
	t.Helper()
	a, err := ParseAlignment(s)
	require.NoError(t, err)
	return a
}

func TestOptimizeSpacing(t *testing.T) {
	t.Run("pads to max rows", func(t *testing.T) {
		rows := OptimizeSpacing([]string{"one", "two"}, 5, AlignLeft)
		require.Len(t, rows, 5)
		assert.Equal(t, Fit("one", Width), rows[0])
		assert.Equal(t, Blank(), rows[4])
	})

	t.Run("drops excess rows", func(t *testing.T) {
		in := make([]string, 30)
		for i := range in {
			in[i] = strings.Repeat("x", i)
		}
		rows := OptimizeSpacing(in, ContentRows, AlignLeft)
		require.Len(t, rows, ContentRows)
		assert.Equal(t, Fit(in[ContentRows-1], Width), rows[ContentRows-1])
	})

	t.Run("every row is full width", func(t *testing.T) {
		for _, a := range []Alignment{AlignLeft, AlignCenter, AlignJustify} {
			rows := OptimizeSpacing([]string{"short", strings.Repeat("long ", 20), "", "▲ up"}, 6, a)
			for i, row := range rows {
				assert.Equal(t, Width, Len(row), "alignment %s row %d", a, i)
			}
		}
	})

	t.Run("center trims before centering", func(t *testing.T) {
		rows := OptimizeSpacing([]string{"  Hi  "}, 1, AlignCenter)
		assert.Equal(t, CenterText("Hi", Width), rows[0])
	})

	t.Run("zero rows", func(t *testing.T) {
		assert.Empty(t, OptimizeSpacing([]string{"a"}, 0, AlignLeft))
	})
}

func TestValidateAndCheck(t *testing.T) {
	good := Normalize(nil)
	assert.True(t, Validate(good))
	assert.NoError(t, Check(good))

	short := good[:23]
	assert.False(t, Validate(short))
	assert.ErrorIs(t, Check(short), ErrLayoutInvariant)

	bad := append([]string(nil), good...)
	bad[7] = "too short"
	err := Check(bad)
	assert.ErrorIs(t, err, ErrLayoutInvariant)
	assert.ErrorContains(t, err, "row 7")

	// Validate never corrects its input
	assert.Equal(t, "too short", bad[7])
}

func TestNormalize(t *testing.T) {
	in := []string{"header", strings.Repeat("═", 50)}
	for i := 0; i < 30; i++ {
		in = append(in, "row")
	}

	rows := Normalize(in)

	require.NoError(t, Check(rows))
	assert.Equal(t, Rule('═'), rows[1])
	assert.Equal(t, Fit("header", Width), rows[0])
}

func TestRule(t *testing.T) {
	assert.Equal(t, Width, Len(Rule('─')))
	assert.Equal(t, strings.Repeat("═", Width), Rule('═'))
}

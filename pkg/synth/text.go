package synth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/goutils"
	"github.com/lucasjones/reggen"

	"github.com/compozy/fixturegen/pkg/constraint"
)

const regexAttempts = 10

// Text returns an alphanumeric string of text.length characters.
func (s *Synthesizer) Text() (string, error) {
	return s.Alphanumeric(s.cfg.Text.Length)
}

func (s *Synthesizer) Alphanumeric(n int) (string, error) {
	out, err := goutils.RandomAlphaNumeric(n)
	if err != nil {
		return "", fmt.Errorf("failed to generate alphanumeric text: %w", err)
	}
	return out, nil
}

func (s *Synthesizer) Alphabetic(n int) (string, error) {
	out, err := goutils.RandomAlphabetic(n)
	if err != nil {
		return "", fmt.Errorf("failed to generate alphabetic text: %w", err)
	}
	return out, nil
}

// AlphanumericBetween returns an alphanumeric string whose length is in [lo, hi].
func (s *Synthesizer) AlphanumericBetween(lo, hi int) (string, error) {
	if lo < 0 || hi < lo {
		return "", fmt.Errorf("%w: length range [%d, %d]", ErrUnsatisfiable, lo, hi)
	}
	n := lo
	if hi > lo {
		n += int(s.IntBelow(uint64(hi-lo) + 1))
	}
	return s.Alphanumeric(n)
}

// Rune returns a random ASCII letter.
func (s *Synthesizer) Rune() (rune, error) {
	letter, err := s.Alphabetic(1)
	if err != nil {
		return 0, err
	}
	return []rune(letter)[0], nil
}

// LimitedMax returns the usable upper length of a Size constraint: its maximum,
// clamped to text.max_length, and never below its minimum.
func (s *Synthesizer) LimitedMax(size constraint.Constraint) int {
	return max(size.SizeMin, min(size.SizeMax, s.cfg.Text.MaxLength))
}

// BySize returns alphanumeric text honoring a Size constraint.
func (s *Synthesizer) BySize(size constraint.Constraint) (string, error) {
	return s.AlphanumericBetween(size.SizeMin, s.LimitedMax(size))
}

// ByRegex returns a string matching pattern. Unbounded repetitions repeat at
// most text.regex_repeat_limit times.
func (s *Synthesizer) ByRegex(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	gen, err := reggen.NewGenerator(trimAnchors(pattern))
	if err != nil {
		return "", fmt.Errorf("unsupported pattern %q: %w", pattern, err)
	}
	var out string
	for range regexAttempts {
		out = gen.Generate(s.cfg.Text.RegexRepeatLimit)
		if re.MatchString(out) {
			return out, nil
		}
	}
	return "", fmt.Errorf("%w: no match for %q after %d attempts", ErrUnsatisfiable, pattern, regexAttempts)
}

// Email returns an address matching text.email_pattern.
func (s *Synthesizer) Email() (string, error) {
	return s.ByRegex(s.cfg.Text.EmailPattern)
}

func trimAnchors(pattern string) string {
	pattern = strings.TrimPrefix(pattern, "^")
	if strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`) {
		pattern = strings.TrimSuffix(pattern, "$")
	}
	return pattern
}

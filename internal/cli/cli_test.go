package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/oliver-nowak/ocolor"
	"github.com/oliver-nowak/ocolor/internal/config"
)

// run executes the command line with fresh settings and returns stdout
// and stderr.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { ocolor.SetLogger(nil) })
	if err := config.Setup(""); err != nil {
		t.Fatalf("config.Setup() error = %v", err)
	}

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--swatch=false"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "#FF0000", "cornflowerblue")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"#ff0000", "red", "(primary)", "0xffff0000", "#6495ed", "1.000 0.000 0.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_Classes(t *testing.T) {
	out, _, err := run(t, "inspect", "black", "white", "gray")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(black)", "(white)", "(grey)"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_UnknownColor(t *testing.T) {
	_, _, err := run(t, "inspect", "bluish")
	if !errors.Is(err, ocolor.ErrNotFound) {
		t.Errorf("inspect bluish error = %v, want ErrNotFound", err)
	}

	_, _, err = run(t, "inspect", "#12345z")
	if !errors.Is(err, ocolor.ErrInvalidHex) {
		t.Errorf("inspect #12345z error = %v, want ErrInvalidHex", err)
	}
}

func TestVerboseLogsMisses(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "hues", "chartreuse")
	if err == nil {
		t.Fatal("hues chartreuse succeeded, want error")
	}
	if !strings.Contains(stderr, "hue not registered") || !strings.Contains(stderr, "chartreuse") {
		t.Errorf("stderr = %q, want a debug record for the miss", stderr)
	}
}

func TestHarmony(t *testing.T) {
	out, _, err := run(t, "harmony", "#ff0000", "--scheme", "complement")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("complement printed %d lines, want 2:\n%s", len(lines), out)
	}
	if want := "#" + ocolor.Red.Complement().Hex(); !strings.Contains(lines[1], want) {
		t.Errorf("second line = %q, want it to contain %s", lines[1], want)
	}
}

func TestHarmony_RandomSeeded(t *testing.T) {
	a, _, err := run(t, "harmony", "teal", "-s", "random", "--seed", "42", "-n", "4")
	if err != nil {
		t.Fatal(err)
	}
	b, _, _ := run(t, "harmony", "teal", "-s", "random", "--seed", "42", "-n", "4")
	if a != b {
		t.Errorf("same seed printed different palettes:\n%s\n%s", a, b)
	}
	if n := strings.Count(a, "\n"); n != 5 {
		t.Errorf("random scheme printed %d lines, want 5", n)
	}
}

func TestHarmonyFunc(t *testing.T) {
	tests := []struct {
		scheme string
		n      int
	}{
		{"complement", 2},
		{"analogous", 3},
		{"triad", 3},
		{"split", 3},
		{"tetrad", 4},
		{"random", 4},
	}
	as := analogSettings{angle: 30, delta: 0.1, count: 3, seed: 1}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			got, err := harmony(ocolor.Red, tt.scheme, as)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.n {
				t.Errorf("len = %d, want %d", len(got), tt.n)
			}
			if got[0] != ocolor.Red {
				t.Errorf("first color = %v, want the base", got[0])
			}
		})
	}

	if _, err := harmony(ocolor.Red, "pentad", as); err == nil {
		t.Error("unknown scheme returned no error")
	}

	as.count = -1
	if _, err := harmony(ocolor.Red, randomScheme, as); err == nil {
		t.Error("random scheme with count -1 returned no error")
	}
	if got, err := harmony(ocolor.Red, "triad", as); err != nil || len(got) != 3 {
		t.Errorf("triad with count -1 = %d colors, %v; want 3, nil", len(got), err)
	}
}

func TestHarmony_NegativeCount(t *testing.T) {
	_, _, err := run(t, "harmony", "red", "-s", "random", "-n", "-1")
	if err == nil || !strings.Contains(err.Error(), "count must be >= 0") {
		t.Errorf("harmony -n -1 error = %v, want a count error", err)
	}

	t.Setenv("OCOLOR_HARMONY_ANALOG_COUNT", "-1")
	if _, _, err := run(t, "harmony", "red", "-s", "random"); err == nil {
		t.Error("negative count from the environment returned no error")
	}
}

func TestHues(t *testing.T) {
	out, _, err := run(t, "hues")
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range ocolor.Hues() {
		if !strings.Contains(out, h.Name()) {
			t.Errorf("hues output missing %s", h.Name())
		}
	}

	out, _, err = run(t, "hues", "--primary")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "lime") || !strings.Contains(out, "purple") {
		t.Errorf("hues --primary output:\n%s", out)
	}
}

func TestLab(t *testing.T) {
	out, _, err := run(t, "lab", "53.2408", "80.0925", "67.2032")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "red") || strings.Contains(out, "clipped") {
		t.Errorf("lab output:\n%s", out)
	}

	out, _, err = run(t, "lab", "--", "50", "-128", "-128")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "clipped") {
		t.Errorf("out-of-gamut lab output:\n%s", out)
	}

	if _, _, err := run(t, "lab", "50", "x", "0"); err == nil {
		t.Error("lab with a non-number succeeded")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ocolor.Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in  string
		hex string
	}{
		{"#00ff00", "00ff00"},
		{"0X0000FF", "0000ff"},
		{"tan", "d2b48c"},
		{"fade", "00fade"},
		{"Red", "ff0000"},
	}
	for _, tt := range tests {
		c, err := parseColor(tt.in)
		if err != nil {
			t.Errorf("parseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got := c.Hex(); got != tt.hex {
			t.Errorf("parseColor(%q) = %s, want %s", tt.in, got, tt.hex)
		}
	}
}

func TestRenderer(t *testing.T) {
	r := renderer{swatch: false, width: 4}
	if got := r.block(ocolor.Red); got != "" {
		t.Errorf("block() with swatches off = %q, want empty", got)
	}
	on := renderer{swatch: true, width: 4}
	if got := on.block(ocolor.Red); !strings.Contains(got, "    ") {
		t.Errorf("block() = %q, want four cells", got)
	}
	if got := r.line(ocolor.Yellow, false); !strings.Contains(got, "#ffff00") || !strings.Contains(got, "yellow") {
		t.Errorf("line() = %q", got)
	}
}

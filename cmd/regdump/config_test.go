package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "regdump.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	return path
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := loadConfig("ex.regdump.toml")
	require.NoError(t, err)

	require.Len(t, cfg.Registers, 3)
	require.Len(t, cfg.Packets, 2)

	ctrl := cfg.Registers["ctrl"]
	require.NotNil(t, ctrl)
	require.Equal(t, 32, ctrl.Width)
	require.Len(t, ctrl.Fields, 3)

	header := cfg.Packets["header"]
	require.NotNil(t, header)
	require.Equal(t, 8, header.Size)
	require.Len(t, header.layouts, 1)
}

func TestLoadConfigWidthMismatch(t *testing.T) {
	type TC struct {
		name string
		src  string
	}

	tcs := []TC{
		{
			name: "register short",
			src: `
[[register]]
name = "r"
width = 16
  [[register.field]]
  name = "a"
  bits = 15
`,
		},
		{
			name: "register over",
			src: `
[[register]]
name = "r"
width = 8
  [[register.field]]
  name = "a"
  bits = 4
  [[register.field]]
  name = "b"
  bits = 5
`,
		},
		{
			name: "zero bits",
			src: `
[[register]]
name = "r"
width = 8
  [[register.field]]
  name = "a"
  bits = 8
  [[register.field]]
  name = "b"
`,
		},
		{
			name: "packet no fields",
			src: `
[[packet]]
name = "p"
`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tc.src))
			require.True(t, Error.Has(err), "%+v", err)
			require.True(t, bitpart.WidthError.Has(err), "%+v", err)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	type TC struct {
		name string
		src  string
	}

	tcs := []TC{
		{name: "empty", src: ``},
		{name: "syntax", src: `[[register]`},
		{name: "numbering", src: `numbering = "middle"`},
		{
			name: "width",
			src: `
[[register]]
name = "r"
width = 12
  [[register.field]]
  bits = 12
`,
		},
		{
			name: "kind",
			src: `
[[register]]
name = "r"
width = 8
  [[register.field]]
  bits = 8
  kind = "float"
`,
		},
		{
			name: "duplicate",
			src: `
[[packet]]
name = "p"
  [[packet.field]]
  size = 1
[[packet]]
name = "p"
  [[packet.field]]
  size = 1
`,
		},
		{
			name: "wide uint",
			src: `
[[packet]]
name = "p"
  [[packet.field]]
  size = 9
`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tc.src))
			require.True(t, Error.Has(err), "%+v", err)
		})
	}
}

func TestLoadConfigChainedPacket(t *testing.T) {
	var src strings.Builder

	src.WriteString("[[packet]]\nname = \"long\"\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&src, "  [[packet.field]]\n  name = \"b%d\"\n  size = 1\n", i)
	}

	cfg, err := loadConfig(writeConfig(t, src.String()))
	require.NoError(t, err)

	p := cfg.Packets["long"]
	require.Len(t, p.layouts, 2)
	require.Equal(t, 30, p.Size)

	b := make([]byte, 31)
	for i := range b {
		b[i] = byte(i)
	}

	values, rest, err := p.Decode(b)
	require.NoError(t, err)
	require.Len(t, values, 30)
	require.Equal(t, Value{Name: "b29", Value: "29"}, values[29])
	require.Equal(t, []byte{30}, rest)

	_, _, err = p.Decode(b[:29])
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func flagsConfig(name string, width int, numbering string, reserved int) string {
	var src strings.Builder

	fmt.Fprintf(&src, "[[register]]\nname = %q\nwidth = %d\nnumbering = %q\n", name, width, numbering)
	for i := 0; i < width-reserved; i++ {
		fmt.Fprintf(&src, "  [[register.field]]\n  name = \"f%d\"\n  bits = 1\n  kind = \"bool\"\n", i)
	}
	if reserved > 0 {
		fmt.Fprintf(&src, "  [[register.field]]\n  bits = %d\n  kind = \"reserved\"\n", reserved)
	}

	return src.String()
}

func TestLoadConfigWideRegister(t *testing.T) {
	type TC struct {
		numbering string
		set       []int
	}

	tcs := []TC{
		{numbering: "lsb0", set: []int{0, 1, 31}},
		{numbering: "msb0", set: []int{0, 30, 31}},
	}

	for _, tc := range tcs {
		t.Run(tc.numbering, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, flagsConfig("flags", 32, tc.numbering, 0)))
			require.NoError(t, err)

			r := cfg.Registers["flags"]
			require.Len(t, r.Fields, 32)

			values, err := r.Decode(0x8000_0003)
			require.NoError(t, err)
			require.Len(t, values, 32)

			want := make([]Value, 32)
			for i := range want {
				want[i] = Value{Name: fmt.Sprintf("f%d", i), Value: "false"}
			}
			for _, i := range tc.set {
				want[i].Value = "true"
			}

			require.Equal(t, want, values)
		})
	}
}

func TestLoadConfigWideRegisterRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, numbering := range []string{"lsb0", "msb0"} {
		for _, reserved := range []int{0, 9} {
			cfg, err := loadConfig(writeConfig(t, flagsConfig("r", 64, numbering, reserved)))
			require.NoError(t, err)

			r := cfg.Registers["r"]
			require.Len(t, r.Fields, 64-reserved)

			for i := 0; i < 100; i++ {
				v := rng.Uint64()

				values, err := r.Decode(v)
				require.NoError(t, err)
				require.Len(t, values, 64-reserved)

				for j, got := range values {
					bit := j
					if numbering == "msb0" {
						bit = 63 - j
					}

					want := strconv.FormatBool(v>>bit&1 == 1)
					require.Equal(t, want, got.Value, "%s %#x field %d", numbering, v, j)
				}
			}
		}
	}
}

func TestLoadConfigWideRegisterMismatch(t *testing.T) {
	src := flagsConfig("flags", 32, "lsb0", 0) + "  [[register.field]]\n  bits = 1\n"

	_, err := loadConfig(writeConfig(t, src))
	require.True(t, Error.Has(err), "%+v", err)
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
	require.Contains(t, err.Error(), `register 0 ("flags")`)
}

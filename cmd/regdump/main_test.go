package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
)

func TestRegisterDecode(t *testing.T) {
	cfg, err := loadConfig("ex.regdump.toml")
	require.NoError(t, err)

	type TC struct {
		register string
		value    uint64
		want     []Value
	}

	tcs := []TC{
		{
			register: "status",
			value:    0b1111_0000_1100_1010,
			want: []Value{
				{Name: "count", Value: "74"},
				{Name: "ready", Value: "true"},
				{Name: "code", Value: "0xf0"},
			},
		},
		{
			register: "ctrl",
			value:    0b1111_1111_0101_1010_1100_0011_1000_0001,
			want: []Value{
				{Name: "addr", Value: "32685"},
				{Name: "enable", Value: "false"},
				{Name: "mode", Value: "3"},
			},
		},
		{
			register: "sample",
			value:    0b0011_0111,
			want: []Value{
				{Name: "lo", Value: "7"},
				{Name: "delta", Value: "-1"},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.register, func(t *testing.T) {
			values, err := cfg.Registers[tc.register].Decode(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, values)
		})
	}

	_, err = cfg.Registers["status"].Decode(0x1_0000)
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
}

func TestPacketDecode(t *testing.T) {
	cfg, err := loadConfig("ex.regdump.toml")
	require.NoError(t, err)

	b, err := parsePacket("00 11 22 33 44 55 66 77")
	require.NoError(t, err)

	values, rest, err := cfg.Packets["header"].Decode(b)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, []Value{
		{Name: "kind", Value: "0x11"},
		{Name: "length", Value: "1430532898"},
		{Name: "tag", Value: "6677"},
	}, values)

	b, err = parsePacket("01:aa:bb:03:02:ff")
	require.NoError(t, err)

	values, rest, err = cfg.Packets["short"].Decode(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, rest)
	require.Equal(t, []Value{
		{Name: "version", Value: "1"},
		{Name: "seq", Value: "515"},
	}, values)

	_, _, err = cfg.Packets["header"].Decode(b)
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func TestParseRegister(t *testing.T) {
	type TC struct {
		in   string
		want uint64
	}

	tcs := []TC{
		{in: "0xf0ca", want: 0xf0ca},
		{in: "0XF0CA", want: 0xf0ca},
		{in: "0b1111_0000", want: 0xf0},
		{in: "61642", want: 0xf0ca},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			v, err := parseRegister(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}

	_, err := parseRegister("0xzz")
	require.True(t, Error.Has(err), "%+v", err)

	_, err = parsePacket("0g")
	require.True(t, Error.Has(err), "%+v", err)
}

func TestParsePacket(t *testing.T) {
	type TC struct {
		in   string
		want []byte
	}

	tcs := []TC{
		{in: "00112233", want: []byte{0x00, 0x11, 0x22, 0x33}},
		{in: "0x0011 0X2233", want: []byte{0x00, 0x11, 0x22, 0x33}},
		{in: "00:11:22:33", want: []byte{0x00, 0x11, 0x22, 0x33}},
		{in: "0x00:0x11  22", want: []byte{0x00, 0x11, 0x22}},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			b, err := parsePacket(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, b)
		})
	}

	for _, in := range []string{"10x20", "0x1", "00 1x"} {
		_, err := parsePacket(in)
		require.True(t, Error.Has(err), "%q: %+v", in, err)
	}
}

func TestRun(t *testing.T) {
	var out, log bytes.Buffer

	logger := initLogger("regdump", &log)

	err := run(logger, options{
		config:   "ex.regdump.toml",
		register: "status",
		values:   []string{"0xf0ca", "0x0001"},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "count=74 ready=true code=0xf0\ncount=1 ready=false code=0x0\n", out.String())
	require.Contains(t, log.String(), "loaded register map")

	out.Reset()

	err = run(zerolog.Nop(), options{
		config: "ex.regdump.toml",
		packet: "short",
		values: []string{"010000ffff"},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "version=1 seq=65535\n", out.String())

	err = run(zerolog.Nop(), options{config: "ex.regdump.toml"}, &out)
	require.True(t, Error.Has(err), "%+v", err)

	err = run(zerolog.Nop(), options{config: "ex.regdump.toml", register: "nope"}, &out)
	require.True(t, Error.Has(err), "%+v", err)

	err = run(zerolog.Nop(), options{config: "missing.toml", register: "status"}, &out)
	require.True(t, Error.Has(err), "%+v", err)
}

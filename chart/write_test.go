package chart

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/autochart/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallChartJSON = `{
  "events": [],
  "strumLines": [
    {
      "visible": true,
      "keyCount": 4,
      "notes": [
        {
          "id": 0,
          "sLen": 0,
          "time": 1000,
          "type": 0
        }
      ],
      "position": "dad",
      "type": 0,
      "characters": [
        "dad"
      ]
    },
    {
      "visible": true,
      "keyCount": 4,
      "notes": [],
      "position": "boyfriend",
      "type": 1,
      "characters": [
        "bf"
      ]
    },
    {
      "visible": false,
      "keyCount": 4,
      "notes": [],
      "position": "girlfriend",
      "type": 2,
      "characters": [
        "gf"
      ]
    }
  ],
  "scrollSpeed": 1.6,
  "chartVersion": "1.6.0",
  "stage": "stage",
  "codenameChart": true,
  "noteTypes": []
}`

func TestMarshalWireFormat(t *testing.T) {
	res, err := Generate(model.Analysis{Bpm: 120, Duration: 5, Onsets: []float64{1}}, DefaultOptions())
	require.NoError(t, err)

	data, err := Marshal(res.Chart)
	require.NoError(t, err)
	assert.Equal(t, smallChartJSON, string(data))
}

func TestMarshalWritesWholeFloatsAndEscapesNonASCII(t *testing.T) {
	opts := DefaultOptions()
	opts.ScrollSpeed = 2
	opts.Opponent = "пико"
	opts.Stage = "🎵"
	c := Assemble(nil, nil, opts)

	data, err := Marshal(c)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"scrollSpeed": 2.0,`)
	assert.Contains(t, out, `"\u043f\u0438\u043a\u043e"`)
	assert.Contains(t, out, `"stage": "\ud83c\udfb5"`)
	assert.NotContains(t, out, "пико")
	assert.Equal(t, byte('}'), data[len(data)-1])

	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, WriteFile(path, c))
	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"пико"}, back.StrumLines[0].Characters)
	assert.Equal(t, "🎵", back.Stage)

	meta, err := Marshal(NewMeta(120, opts))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"bpm": 120.0,`)
}

func TestWriteAndReadFile(t *testing.T) {
	res, err := Generate(exampleAnalysis(), DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, WriteFile(path, res.Chart))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Chart.StrumLines[0].Notes, c.StrumLines[0].Notes)
	assert.Equal(t, "1.6.0", c.ChartVersion)
}

func TestNewMeta(t *testing.T) {
	opts := DefaultOptions()
	opts.Opponent = "pico"
	m := NewMeta(129.96, opts)

	assert := assert.New(t)
	assert.Equal(model.Float(130), m.Bpm)
	assert.Equal("pico", m.Icon)
	assert.Equal("Generated Song", m.DisplayName)
	assert.Equal("#00FF00", m.Color)
	assert.True(m.CoopAllowed)
	assert.True(m.OpponentModeAllowed)
}

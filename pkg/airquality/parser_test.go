package airquality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	t.Run("full line", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("PM25:23.4;PM10:45.1;CO2:780;TEMP:21.9;HUM:47.3")
		require.NoError(t, err)
		require.True(t, fields.Complete())
		assert.Equal(t, 23.4, fields[FieldPM25])
		assert.Equal(t, 45.1, fields[FieldPM10])
		assert.Equal(t, 780.0, fields[FieldCO2])
		assert.Equal(t, 21.9, fields[FieldTemp])
		assert.Equal(t, 47.3, fields[FieldHum])
	})
	t.Run("key case and order do not matter", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("hum:47.3;temp:21.9;co2:780;pm10:45.1;pm25:23.4")
		require.NoError(t, err)
		assert.True(t, fields.Complete())
		assert.Equal(t, 23.4, fields[FieldPM25])
	})
	t.Run("aliases", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("PM2.5:1;PM10:2;CO2:3;T:4;RH:5")
		require.NoError(t, err)
		assert.True(t, fields.Complete())

		fields, err = ParseLine("PM2_5:1;PM10:2;CO2:3;TEMPC:4;HUM:5")
		require.NoError(t, err)
		assert.True(t, fields.Complete())
	})
	t.Run("missing key yields incomplete record", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("PM25:10;PM10:20;CO2:500;TEMP:20")
		require.NoError(t, err)
		assert.False(t, fields.Complete())
		assert.NotContains(t, fields, FieldHum)
		assert.Len(t, fields, 4)
	})
	t.Run("empty segments and missing colons are skipped", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine(";;PM25:10;;garbage;PM10:20;")
		require.NoError(t, err)
		assert.Len(t, fields, 2)
	})
	t.Run("unknown keys are ignored", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("NOX:12.5;PM25:10")
		require.NoError(t, err)
		assert.Equal(t, Fields{FieldPM25: 10}, fields)
	})
	t.Run("padded keys and values", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("  pm25 : 10.5 ; hum : 44 ")
		require.NoError(t, err)
		assert.Equal(t, 10.5, fields[FieldPM25])
		assert.Equal(t, 44.0, fields[FieldHum])
	})
	t.Run("malformed number fails the whole line", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("PM25:abc;PM10:20")
		assert.ErrorIs(t, err, ErrBadNumber)
		assert.Nil(t, fields)
	})
	t.Run("empty line", func(t *testing.T) {
		t.Parallel()

		fields, err := ParseLine("")
		require.NoError(t, err)
		assert.Empty(t, fields)
	})
}

package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const stationCSV = `id,x,y,z,2023-01-01,2023-01-02
S1,0,0,100,19.4,15.1
S2,10000,5000,600,16.2,12.3
S3,20000,0,1100,13.1,NA
`

func TestReadStations(t *testing.T) {
	net, err := ReadStations(strings.NewReader(stationCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, net.Stations())
	assert.Equal(t, []string{"S1", "S2", "S3"}, net.ID)
	assert.Equal(t, []float64{0, 10000, 20000}, net.X)
	assert.Equal(t, []float64{0, 5000, 0}, net.Y)
	assert.Equal(t, []float64{100, 600, 1100}, net.Z)
	assert.Equal(t, []string{"2023-01-01", "2023-01-02"}, net.Days)

	assert.Equal(t, 19.4, net.Values.At(0, 0))
	assert.Equal(t, 12.3, net.Values.At(1, 1))
	assert.True(t, math.IsNaN(net.Values.At(2, 1)), "NA must parse to NaN")
}

func TestReadStationsRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"no rows":        "id,x,y,z,2023-01-01\n",
		"no day columns": "id,x,y,z\nS1,0,0,100\n",
		"bad number":     "id,x,y,z,2023-01-01\nS1,0,zero,100,19.4\n",
		"ragged row":     "id,x,y,z,2023-01-01\nS1,0,0,100\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadStations(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestReadTargets(t *testing.T) {
	ids, points, err := ReadTargets(strings.NewReader("id,x,y,z\nP1,8000,4000,450\nP2,15000,2000,800\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2"}, ids)
	require.Len(t, points, 2)
	assert.Equal(t, 8000.0, points[0].X)
	assert.Equal(t, 800.0, points[1].Z)
}

func TestReadTargetsRejectsMissingCoordinate(t *testing.T) {
	_, _, err := ReadTargets(strings.NewReader("id,x,y,z\nP1,8000,NA,450\n"))
	assert.Error(t, err)
}

func TestWriteResults(t *testing.T) {
	results := mat.NewDense(2, 2, []float64{17.25, math.NaN(), 14.5, 11})

	var sb strings.Builder
	err := WriteResults(&sb, []string{"P1", "P2"}, []string{"2023-01-01", "2023-01-02"}, results)
	require.NoError(t, err)

	want := "id,2023-01-01,2023-01-02\nP1,17.25,NA\nP2,14.5,11\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteResultsShapeMismatch(t *testing.T) {
	results := mat.NewDense(2, 1, nil)
	var sb strings.Builder
	assert.Error(t, WriteResults(&sb, []string{"P1"}, []string{"d"}, results))
	assert.Error(t, WriteResults(&sb, []string{"P1", "P2"}, []string{"d1", "d2"}, results))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoardMakesLinksTwoWay(t *testing.T) {
	b := mustBoard(t, `{
		"nodes": {
			"1": {"links": ["t:2", "f:3"]},
			"2": {"links": []},
			"3": {"links": []}
		}
	}`)

	assert.ElementsMatch(t, []Edge{
		{To: 2, By: TransportTaxi},
		{To: 3, By: TransportFerry},
	}, b.Neighbours(1))
	assert.Equal(t, []Edge{{To: 1, By: TransportTaxi}}, b.Neighbours(2))
	assert.Equal(t, []Edge{{To: 1, By: TransportFerry}}, b.Neighbours(3))
}

func TestParseBoardDoesNotDuplicateDeclaredReverseLinks(t *testing.T) {
	// both ends declare the same link; it is still one edge each way
	b := mustBoard(t, `{
		"nodes": {
			"1": {"links": ["t:2"]},
			"2": {"links": ["t:1"]}
		}
	}`)

	assert.Equal(t, []Edge{{To: 2, By: TransportTaxi}}, b.Neighbours(1))
	assert.Equal(t, []Edge{{To: 1, By: TransportTaxi}}, b.Neighbours(2))
}

func TestParseBoardRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"bad json":     `{`,
		"bad node id":  `{"nodes": {"zero": {"links": []}}}`,
		"zero node id": `{"nodes": {"0": {"links": []}}}`,
		"bad mode":     `{"nodes": {"1": {"links": ["x:2"]}, "2": {"links": []}}}`,
		"bad link":     `{"nodes": {"1": {"links": ["t2"]}}}`,
		"unknown node": `{"nodes": {"1": {"links": ["t:9"]}}}`,
	}

	for name, jsdata := range cases {
		_, err := ParseBoard([]byte(jsdata))
		assert.Error(t, err, name)
	}
}

func TestLocationsSorted(t *testing.T) {
	b := mustBoard(t, `{
		"nodes": {
			"7": {"links": []},
			"2": {"links": ["t:7"]},
			"13": {"links": []}
		}
	}`)

	require.Equal(t, []Location{2, 7, 13}, b.Locations())
}

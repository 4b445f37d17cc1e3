// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	in := "x,y\n# a comment\n1, 2\n3,4\n\n5,6\n"
	m, err := readPoints(strings.NewReader(in))
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{5, 6}, m.RawRowView(2))
}

func TestReadPoints_NoHeader(t *testing.T) {
	m, err := readPoints(strings.NewReader("0.5\n1.5\n"))
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
}

func TestReadPoints_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"header only":    "x,y\n",
		"ragged":         "1,2\n3\n",
		"bad number":     "1,2\n3,abc\n",
		"unclosed quote": "\"1,2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readPoints(strings.NewReader(in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errPoints))
		})
	}
}
